package vwap

import (
	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	quant "quantlab_backend/internal/quant/vwap"
	"quantlab_backend/internal/service"
)

type serv struct {
	cfg config.TutorialConfig
}

// NewVWAPService - сервис туториала по VWAP
func NewVWAPService(cfg config.TutorialConfig) service.VWAPService {
	return &serv{cfg: cfg}
}

// Calculate симулирует внутридневные бары, считает накопленный VWAP,
// скользящую среднюю для сравнения и пошаговую учебную таблицу
func (s *serv) Calculate(req model.CalcRequest) (*model.VWAPResult, error) {
	p := service.ResolveParams(s.cfg, req)
	src := service.SourceFor(req.Seed)

	params := quant.SimulationParams{
		BasePrice:        p.Numbers["basePrice"],
		VolumeMultiplier: p.Numbers["volumeMultiplier"],
		Volatility:       p.Numbers["volatility"],
		NumIntervals:     int(p.Numbers["numIntervals"]),
		Condition:        quant.MarketCondition(p.Enums["marketCondition"]),
		Pattern:          quant.VolumePattern(p.Enums["volumePattern"]),
	}

	bars := quant.SimulateIntraday(params, src)

	return &model.VWAPResult{
		Params: p,
		Bars:   bars,
		VWAP:   quant.ComputeVWAP(bars),
		SMA:    quant.ComputeSMA(bars, int(p.Numbers["smaWindow"])),
		Table:  quant.CalculationTable(bars),
	}, nil
}
