package model

import (
	"quantlab_backend/internal/quant/kelly"
	"quantlab_backend/internal/quant/pricing"
	"quantlab_backend/internal/quant/spectral"
	"quantlab_backend/internal/quant/vwap"
)

// CalcRequest - плоский набор параметров от фронтенда.
// Числа и перечисления валидируются на границе сервиса:
// отсутствующие и вышедшие за диапазон значения заменяются дефолтами.
// Seed задается для воспроизводимых траекторий (тесты, шаринг ссылок)
type CalcRequest struct {
	Numbers map[string]float64
	Enums   map[string]string
	Seed    *int64
}

// ResolvedParams - параметры после валидации, с которыми реально считали
type ResolvedParams struct {
	Numbers map[string]float64
	Enums   map[string]string
}

type PricingResult struct {
	Params         ResolvedParams
	Price          float64
	IntrinsicValue float64
	DiscountFactor float64
	Density        []pricing.DensityPoint
	OverTime       []pricing.TimePoint
	OverVol        []pricing.VolPoint
}

type SpectralResult struct {
	Params   ResolvedParams
	Series   spectral.Series
	Spectrum []spectral.SpectrumPoint
	Nyquist  spectral.NyquistResult
}

type NyquistRequest struct {
	SampleRate  float64
	Frequencies []float64
}

type KellyResult struct {
	Params      ResolvedParams
	Fraction    float64
	GrowthCurve []kelly.GrowthPoint
	Trajectory  []kelly.Step
	Sweep       []kelly.SweepPoint
}

type VWAPResult struct {
	Params ResolvedParams
	Bars   []vwap.Bar
	VWAP   []float64
	SMA    []float64
	Table  []vwap.TableRow
}

// NumberParam / EnumParam - описание параметра для фронтенда
// (диапазоны слайдеров и допустимые значения селектов)
type NumberParam struct {
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

type EnumParam struct {
	Default string
	Values  []string
}

type TutorialInfo struct {
	Name    string
	Numbers map[string]NumberParam
	Enums   map[string]EnumParam
}
