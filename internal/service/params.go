package service

import (
	"math"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	"quantlab_backend/pkg/randsrc"
)

// ResolveParams валидирует плоский набор параметров по декларации туториала.
// Отсутствующие, нечисловые и вышедшие за диапазон значения заменяются
// дефолтами: плохой вход не должен ломать расчет и график
func ResolveParams(cfg config.TutorialConfig, req model.CalcRequest) model.ResolvedParams {
	resolved := model.ResolvedParams{
		Numbers: make(map[string]float64, len(cfg.NumberParams())),
		Enums:   make(map[string]string, len(cfg.EnumParams())),
	}

	for key, def := range cfg.NumberParams() {
		v, ok := req.Numbers[key]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < def.Min || v > def.Max {
			v = def.Default
		}
		resolved.Numbers[key] = v
	}

	for key, def := range cfg.EnumParams() {
		v, ok := req.Enums[key]
		if !ok || !contains(def.Values, v) {
			v = def.Default
		}
		resolved.Enums[key] = v
	}

	return resolved
}

// SourceFor - источник случайности для запроса: с сидом воспроизводимый,
// без сида - от энтропии (живые графики)
func SourceFor(seed *int64) randsrc.Source {
	if seed != nil {
		return randsrc.New(*seed)
	}
	return randsrc.NewUnseeded()
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
