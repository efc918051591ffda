package converter

import (
	dto "quantlab_backend/internal/api/dto/kelly"
	"quantlab_backend/internal/model"
)

func ToKellyCalcRequest(req dto.CalculateRequest) model.CalcRequest {
	return model.CalcRequest{
		Numbers: req.Params,
		Seed:    req.Seed,
	}
}

func ToKellyResponse(res model.KellyResult) dto.CalculateResponse {
	curve := make([]dto.GrowthPoint, len(res.GrowthCurve))
	for i, p := range res.GrowthCurve {
		curve[i] = dto.GrowthPoint{Fraction: p.Fraction, GrowthRate: p.GrowthRate}
	}

	trajectory := make([]dto.TrajectoryStep, len(res.Trajectory))
	for i, s := range res.Trajectory {
		trajectory[i] = dto.TrajectoryStep{
			BetIndex:  s.BetIndex,
			Kelly:     s.Kelly,
			HalfKelly: s.HalfKelly,
			OverBet:   s.OverBet,
		}
	}

	sweep := make([]dto.SweepPoint, len(res.Sweep))
	for i, p := range res.Sweep {
		sweep[i] = dto.SweepPoint{
			Multiple:   p.Multiple,
			Fraction:   p.Fraction,
			GrowthRate: p.GrowthRate,
			Volatility: p.Volatility,
		}
	}

	return dto.CalculateResponse{
		Params:      res.Params.Numbers,
		Fraction:    res.Fraction,
		GrowthCurve: curve,
		Trajectory:  trajectory,
		Sweep:       sweep,
	}
}
