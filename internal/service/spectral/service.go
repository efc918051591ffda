package spectral

import (
	"errors"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	quant "quantlab_backend/internal/quant/spectral"
	"quantlab_backend/internal/service"
)

type serv struct {
	cfg config.TutorialConfig
}

// NewSpectralService - сервис туториала по спектральному анализу рядов
func NewSpectralService(cfg config.TutorialConfig) service.SpectralService {
	return &serv{cfg: cfg}
}

// Calculate синтезирует составной ряд, оценивает спектр магнитуд
// и проверяет заложенные циклы на алиасинг при единичной частоте выборки
func (s *serv) Calculate(req model.CalcRequest) (*model.SpectralResult, error) {
	p := service.ResolveParams(s.cfg, req)
	src := service.SourceFor(req.Seed)

	params := quant.SynthesisParams{
		Period1:       int(p.Numbers["period1"]),
		Period2:       int(p.Numbers["period2"]),
		Amplitude1:    p.Numbers["amplitude1"],
		Amplitude2:    p.Numbers["amplitude2"],
		NoiseLevel:    p.Numbers["noiseLevel"],
		DataPoints:    int(p.Numbers["dataPoints"]),
		TrendStrength: p.Numbers["trendStrength"],
	}

	series := quant.Synthesize(params, src)

	// Частоты циклов в долях частоты выборки (один отсчет = одна единица времени)
	frequencies := []float64{
		1.0 / float64(params.Period1),
		1.0 / float64(params.Period2),
	}

	return &model.SpectralResult{
		Params:   p,
		Series:   series,
		Spectrum: quant.EstimateSpectrum(series.Composite, params.Period1, params.Period2),
		Nyquist:  quant.NyquistCheck(1.0, frequencies),
	}, nil
}

// Nyquist - автономная проверка на алиасинг по явным частотам
func (s *serv) Nyquist(req model.NyquistRequest) (quant.NyquistResult, error) {
	if req.SampleRate <= 0 {
		return quant.NyquistResult{}, errors.New("sample rate must be positive")
	}
	return quant.NyquistCheck(req.SampleRate, req.Frequencies), nil
}
