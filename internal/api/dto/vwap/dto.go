package vwap

import "github.com/shopspring/decimal"

type CalculateRequest struct {
	Params  map[string]float64 `json:"params"`            // Числовые параметры туториала
	Options map[string]string  `json:"options,omitempty"` // Режим рынка, форма объема
	Seed    *int64             `json:"seed,omitempty"`    // Сид симуляции
}

type BarPoint struct {
	Time   int     `json:"time"`   // Номер интервала
	Price  float64 `json:"price"`  // Цена бара
	Volume float64 `json:"volume"` // Объем бара
	VWAP   float64 `json:"vwap"`   // Накопленный VWAP
	SMA    float64 `json:"sma"`    // Скользящая средняя для сравнения
}

type TableRow struct {
	Interval       int             `json:"interval"`         // Номер интервала
	Price          decimal.Decimal `json:"price"`            // Цена
	Volume         decimal.Decimal `json:"volume"`           // Объем
	PriceVolume    decimal.Decimal `json:"price_volume"`     // Цена x объем
	CumPriceVolume decimal.Decimal `json:"cum_price_volume"` // Накопленная сумма p*v
	CumVolume      decimal.Decimal `json:"cum_volume"`       // Накопленный объем
	VWAP           decimal.Decimal `json:"vwap"`             // Текущий VWAP
}

type CalculateResponse struct {
	Params  map[string]float64 `json:"params"`  // Параметры после валидации
	Options map[string]string  `json:"options"` // Перечисления после валидации
	Bars    []BarPoint         `json:"bars"`    // Бары с VWAP и SMA
	Table   []TableRow         `json:"table"`   // Пошаговая учебная таблица
}
