package pricing

import (
	"math"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	quant "quantlab_backend/internal/quant/pricing"
	"quantlab_backend/internal/service"
)

type serv struct {
	cfg config.TutorialConfig
}

// NewPricingService - сервис туториала по ценообразованию опционов
func NewPricingService(cfg config.TutorialConfig) service.PricingService {
	return &serv{cfg: cfg}
}

// Calculate - цена колла, дисконт-фактор, плотность терминальной цены
// и срезы цены по сроку и волатильности. Чистый пересчет по параметрам
func (s *serv) Calculate(req model.CalcRequest) (*model.PricingResult, error) {
	p := service.ResolveParams(s.cfg, req)

	var (
		spot       = p.Numbers["spot"]
		strike     = p.Numbers["strike"]
		rate       = p.Numbers["rate"]
		volatility = p.Numbers["volatility"]
		timeYears  = p.Numbers["days"] / 365.0
	)

	return &model.PricingResult{
		Params:         p,
		Price:          quant.CallPrice(spot, strike, rate, volatility, timeYears),
		IntrinsicValue: math.Max(spot-strike, 0),
		DiscountFactor: quant.DiscountFactor(rate, timeYears),
		Density:        quant.TerminalPriceDensity(spot, rate, volatility, timeYears),
		OverTime:       quant.CallPriceOverTime(spot, strike, rate, volatility),
		OverVol:        quant.CallPriceOverVol(spot, strike, rate, timeYears),
	}, nil
}
