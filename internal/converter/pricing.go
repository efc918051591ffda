package converter

import (
	dto "quantlab_backend/internal/api/dto/pricing"
	"quantlab_backend/internal/model"
)

func ToPricingCalcRequest(req dto.CalculateRequest) model.CalcRequest {
	return model.CalcRequest{
		Numbers: req.Params,
		Seed:    req.Seed,
	}
}

func ToPricingResponse(res model.PricingResult) dto.CalculateResponse {
	density := make([]dto.DensityPoint, len(res.Density))
	for i, p := range res.Density {
		density[i] = dto.DensityPoint{
			Price:         p.Price,
			TerminalPrice: p.TerminalPrice,
			Density:       p.Density,
			ScaledDensity: p.ScaledDensity,
		}
	}

	overTime := make([]dto.TimePoint, len(res.OverTime))
	for i, p := range res.OverTime {
		overTime[i] = dto.TimePoint{Days: p.Days, Price: p.Price}
	}

	overVol := make([]dto.VolPoint, len(res.OverVol))
	for i, p := range res.OverVol {
		overVol[i] = dto.VolPoint{Volatility: p.Volatility, Price: p.Price}
	}

	return dto.CalculateResponse{
		Params:         res.Params.Numbers,
		Price:          res.Price,
		IntrinsicValue: res.IntrinsicValue,
		DiscountFactor: res.DiscountFactor,
		Density:        density,
		OverTime:       overTime,
		OverVol:        overVol,
	}
}
