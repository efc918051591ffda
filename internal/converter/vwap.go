package converter

import (
	dto "quantlab_backend/internal/api/dto/vwap"
	"quantlab_backend/internal/model"
)

func ToVWAPCalcRequest(req dto.CalculateRequest) model.CalcRequest {
	return model.CalcRequest{
		Numbers: req.Params,
		Enums:   req.Options,
		Seed:    req.Seed,
	}
}

func ToVWAPResponse(res model.VWAPResult) dto.CalculateResponse {
	bars := make([]dto.BarPoint, len(res.Bars))
	for i, b := range res.Bars {
		bars[i] = dto.BarPoint{
			Time:   b.Time,
			Price:  b.Price,
			Volume: b.Volume,
		}
		if i < len(res.VWAP) {
			bars[i].VWAP = res.VWAP[i]
		}
		if i < len(res.SMA) {
			bars[i].SMA = res.SMA[i]
		}
	}

	table := make([]dto.TableRow, len(res.Table))
	for i, row := range res.Table {
		table[i] = dto.TableRow{
			Interval:       row.Interval,
			Price:          row.Price,
			Volume:         row.Volume,
			PriceVolume:    row.PriceVolume,
			CumPriceVolume: row.CumPriceVolume,
			CumVolume:      row.CumVolume,
			VWAP:           row.VWAP,
		}
	}

	return dto.CalculateResponse{
		Params:  res.Params.Numbers,
		Options: res.Params.Enums,
		Bars:    bars,
		Table:   table,
	}
}
