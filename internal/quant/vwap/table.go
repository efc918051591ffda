package vwap

import "github.com/shopspring/decimal"

// Точность строк учебной таблицы
const tableScale = 4

// TableRow - строка пошаговой таблицы расчета VWAP.
// Суммы считаются в decimal, чтобы в учебной выкладке
// не накапливалась плавающая погрешность
type TableRow struct {
	Interval       int
	Price          decimal.Decimal
	Volume         decimal.Decimal
	PriceVolume    decimal.Decimal
	CumPriceVolume decimal.Decimal
	CumVolume      decimal.Decimal
	VWAP           decimal.Decimal
}

// CalculationTable строит таблицу: цена, объем, их произведение,
// накопленные суммы и текущий VWAP по каждому бару
func CalculationTable(bars []Bar) []TableRow {
	if len(bars) == 0 {
		return nil
	}

	cumPV := decimal.Zero
	cumV := decimal.Zero

	rows := make([]TableRow, 0, len(bars))
	for _, b := range bars {
		price := decimal.NewFromFloat(b.Price).Round(tableScale)
		volume := decimal.NewFromFloat(b.Volume).Round(tableScale)
		pv := price.Mul(volume).Round(tableScale)

		cumPV = cumPV.Add(pv)
		cumV = cumV.Add(volume)

		row := TableRow{
			Interval:       b.Time,
			Price:          price,
			Volume:         volume,
			PriceVolume:    pv,
			CumPriceVolume: cumPV,
			CumVolume:      cumV,
		}
		if !cumV.IsZero() {
			row.VWAP = cumPV.DivRound(cumV, tableScale)
		}

		rows = append(rows, row)
	}

	return rows
}
