package pricing

type CalculateRequest struct {
	Params map[string]float64 `json:"params"`         // Числовые параметры туториала
	Seed   *int64             `json:"seed,omitempty"` // Сид для воспроизводимого расчета
}

type DensityPoint struct {
	Price         float64 `json:"price"`          // Цена по сетке
	TerminalPrice float64 `json:"terminal_price"` // Цена с риск-нейтральным сносом
	Density       float64 `json:"density"`        // Плотность
	ScaledDensity float64 `json:"scaled_density"` // Плотность, нормированная для графика
}

type TimePoint struct {
	Days  int     `json:"days"`  // Дней до экспирации
	Price float64 `json:"price"` // Цена колла
}

type VolPoint struct {
	Volatility float64 `json:"volatility"` // Волатильность
	Price      float64 `json:"price"`      // Цена колла
}

type CalculateResponse struct {
	Params         map[string]float64 `json:"params"`                // Параметры после валидации
	Price          float64            `json:"price"`                 // Цена колла
	IntrinsicValue float64            `json:"intrinsic_value"`       // Внутренняя стоимость
	DiscountFactor float64            `json:"discount_factor"`       // Дисконт-фактор
	Density        []DensityPoint     `json:"density"`               // Плотность терминальной цены
	OverTime       []TimePoint        `json:"price_over_time"`       // Цена по сроку
	OverVol        []VolPoint         `json:"price_over_volatility"` // Цена по волатильности
}
