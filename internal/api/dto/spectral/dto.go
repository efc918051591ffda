package spectral

type CalculateRequest struct {
	Params map[string]float64 `json:"params"`         // Числовые параметры туториала
	Seed   *int64             `json:"seed,omitempty"` // Сид шума
}

type SeriesPoint struct {
	T         int     `json:"t"`         // Индекс отсчета
	Cycle1    float64 `json:"cycle1"`    // Первый чистый цикл
	Cycle2    float64 `json:"cycle2"`    // Второй чистый цикл
	Composite float64 `json:"composite"` // Композиция с трендом и шумом
}

type SpectrumPoint struct {
	Period    int     `json:"period"`    // Кандидатный период
	Magnitude float64 `json:"magnitude"` // Оценка магнитуды (неотрицательна)
}

type NyquistInfo struct {
	NyquistFrequency float64 `json:"nyquist_frequency"` // Половина частоты выборки
	AliasingRisk     bool    `json:"aliasing_risk"`     // Есть частоты за Найквистом
}

type CalculateResponse struct {
	Params   map[string]float64 `json:"params"`   // Параметры после валидации
	Series   []SeriesPoint      `json:"series"`   // Ряды для временной области
	Spectrum []SpectrumPoint    `json:"spectrum"` // Спектр магнитуд
	Nyquist  NyquistInfo        `json:"nyquist"`  // Проверка заложенных циклов
}

type NyquistRequest struct {
	SampleRate  float64   `json:"sample_rate"` // Частота выборки
	Frequencies []float64 `json:"frequencies"` // Проверяемые частоты
}
