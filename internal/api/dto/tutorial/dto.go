package tutorial

type NumberParam struct {
	Default float64 `json:"default"` // Значение по умолчанию
	Min     float64 `json:"min"`     // Нижняя граница
	Max     float64 `json:"max"`     // Верхняя граница
	Step    float64 `json:"step"`    // Шаг слайдера
}

type EnumParam struct {
	Default string   `json:"default"` // Значение по умолчанию
	Values  []string `json:"values"`  // Допустимые значения
}

type DefaultsResponse struct {
	Name    string                 `json:"name"`    // Имя туториала
	Numbers map[string]NumberParam `json:"numbers"` // Числовые параметры
	Enums   map[string]EnumParam   `json:"enums"`   // Перечисления
}

type ListResponse struct {
	Tutorials []string `json:"tutorials"` // Имена туториалов
}
