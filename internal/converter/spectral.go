package converter

import (
	dto "quantlab_backend/internal/api/dto/spectral"
	"quantlab_backend/internal/model"
	"quantlab_backend/internal/quant/spectral"
)

func ToSpectralCalcRequest(req dto.CalculateRequest) model.CalcRequest {
	return model.CalcRequest{
		Numbers: req.Params,
		Seed:    req.Seed,
	}
}

func ToSpectralResponse(res model.SpectralResult) dto.CalculateResponse {
	// Три выровненных ряда склеиваются в точки для графика
	series := make([]dto.SeriesPoint, len(res.Series.Composite))
	for i := range res.Series.Composite {
		series[i] = dto.SeriesPoint{
			T:         i,
			Cycle1:    res.Series.Cycle1[i],
			Cycle2:    res.Series.Cycle2[i],
			Composite: res.Series.Composite[i],
		}
	}

	spectrum := make([]dto.SpectrumPoint, len(res.Spectrum))
	for i, p := range res.Spectrum {
		spectrum[i] = dto.SpectrumPoint{Period: p.Period, Magnitude: p.Magnitude}
	}

	return dto.CalculateResponse{
		Params:   res.Params.Numbers,
		Series:   series,
		Spectrum: spectrum,
		Nyquist:  ToNyquistInfo(res.Nyquist),
	}
}

func ToNyquistRequest(req dto.NyquistRequest) model.NyquistRequest {
	return model.NyquistRequest{
		SampleRate:  req.SampleRate,
		Frequencies: req.Frequencies,
	}
}

func ToNyquistInfo(res spectral.NyquistResult) dto.NyquistInfo {
	return dto.NyquistInfo{
		NyquistFrequency: res.NyquistFrequency,
		AliasingRisk:     res.AliasingRisk,
	}
}
