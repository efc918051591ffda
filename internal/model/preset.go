package model

import "time"

// Preset - сохраненный набор параметров туториала.
// Банкролл и прочие результаты расчетов не сохраняются:
// ядро пересчитывает все по параметрам заново
type Preset struct {
	ID        string
	UserID    int
	Tutorial  string
	Name      string
	Numbers   map[string]float64
	Enums     map[string]string
	CreatedAt time.Time
}
