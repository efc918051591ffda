package kelly

type CalculateRequest struct {
	Params map[string]float64 `json:"params"`         // Числовые параметры туториала
	Seed   *int64             `json:"seed,omitempty"` // Сид исходов ставок
}

type GrowthPoint struct {
	Fraction   float64 `json:"fraction"`    // Доля банкролла на ставку
	GrowthRate float64 `json:"growth_rate"` // Ожидаемый лог-рост за ставку
}

type TrajectoryStep struct {
	BetIndex  int     `json:"bet_index"`  // Номер ставки
	Kelly     float64 `json:"kelly"`      // Банкролл полного Келли
	HalfKelly float64 `json:"half_kelly"` // Банкролл половинного Келли
	OverBet   float64 `json:"over_bet"`   // Банкролл агрессивной политики
}

type SweepPoint struct {
	Multiple   float64 `json:"multiple"`    // Кратность доли Келли
	Fraction   float64 `json:"fraction"`    // Итоговая доля ставки
	GrowthRate float64 `json:"growth_rate"` // Ожидаемый лог-рост
	Volatility float64 `json:"volatility"`  // Ст. отклонение лог-доходности
}

type CalculateResponse struct {
	Params      map[string]float64 `json:"params"`         // Параметры после валидации
	Fraction    float64            `json:"kelly_fraction"` // Доля Келли (может быть < 0)
	GrowthCurve []GrowthPoint      `json:"growth_curve"`   // Рост по размеру ставки
	Trajectory  []TrajectoryStep   `json:"trajectory"`     // Траектории банкролла
	Sweep       []SweepPoint       `json:"sweep"`          // Аналитика дробного Келли
}
