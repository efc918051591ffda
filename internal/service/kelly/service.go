package kelly

import (
	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	quant "quantlab_backend/internal/quant/kelly"
	"quantlab_backend/internal/service"
)

// Шаг кривой роста по доле ставки
const growthCurveStep = 0.01

// Кратные доли Келли для аналитического сравнения
var sweepMultiples = []float64{0.25, 0.5, 0.75, 1.0, 1.5}

type serv struct {
	cfg config.TutorialConfig
}

// NewKellyService - сервис туториала по критерию Келли
func NewKellyService(cfg config.TutorialConfig) service.KellyService {
	return &serv{cfg: cfg}
}

// Calculate - доля Келли, кривая роста, траектории банкролла
// трех политик и аналитика по дробным долям
func (s *serv) Calculate(req model.CalcRequest) (*model.KellyResult, error) {
	p := service.ResolveParams(s.cfg, req)
	src := service.SourceFor(req.Seed)

	var (
		pWin     = p.Numbers["winProbability"]
		ratio    = p.Numbers["winLossRatio"]
		bankroll = p.Numbers["initialBankroll"]
		numBets  = int(p.Numbers["numberOfBets"])
	)

	return &model.KellyResult{
		Params:      p,
		Fraction:    quant.Fraction(pWin, ratio),
		GrowthCurve: quant.GrowthCurve(pWin, ratio, growthCurveStep),
		Trajectory:  quant.Simulate(bankroll, pWin, ratio, numBets, src),
		Sweep:       quant.FractionalSweep(pWin, ratio, sweepMultiples),
	}, nil
}
