package preset

import "time"

type SaveRequest struct {
	Tutorial string             `json:"tutorial"`          // Имя туториала
	Name     string             `json:"name"`              // Имя пресета
	Params   map[string]float64 `json:"params"`            // Числовые параметры
	Options  map[string]string  `json:"options,omitempty"` // Перечисления
}

type PresetResponse struct {
	ID        string             `json:"id"`                // ID пресета
	Tutorial  string             `json:"tutorial"`          // Имя туториала
	Name      string             `json:"name"`              // Имя пресета
	Params    map[string]float64 `json:"params"`            // Числовые параметры
	Options   map[string]string  `json:"options,omitempty"` // Перечисления
	CreatedAt time.Time          `json:"created_at"`        // Время сохранения
}

type ListResponse struct {
	Presets []PresetResponse `json:"presets"` // Пресеты, свежие первыми
}
