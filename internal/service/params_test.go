package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
)

type stubCfg struct {
	name    string
	numbers map[string]config.NumberParam
	enums   map[string]config.EnumParam
}

func (c *stubCfg) Name() string { return c.name }

func (c *stubCfg) NumberParams() map[string]config.NumberParam { return c.numbers }

func (c *stubCfg) EnumParams() map[string]config.EnumParam { return c.enums }

func newStubCfg() *stubCfg {
	return &stubCfg{
		name: "test",
		numbers: map[string]config.NumberParam{
			"spot": {Default: 100, Min: 50, Max: 200, Step: 1},
			"rate": {Default: 0.05, Min: 0, Max: 0.15, Step: 0.005},
		},
		enums: map[string]config.EnumParam{
			"mode": {Default: "mixed", Values: []string{"trending", "choppy", "mixed"}},
		},
	}
}

func TestResolveParamsPassesValidValues(t *testing.T) {
	resolved := ResolveParams(newStubCfg(), model.CalcRequest{
		Numbers: map[string]float64{"spot": 150, "rate": 0.1},
		Enums:   map[string]string{"mode": "choppy"},
	})

	assert.Equal(t, 150.0, resolved.Numbers["spot"])
	assert.Equal(t, 0.1, resolved.Numbers["rate"])
	assert.Equal(t, "choppy", resolved.Enums["mode"])
}

func TestResolveParamsFallsBackToDefaults(t *testing.T) {
	cases := []struct {
		name string
		req  model.CalcRequest
	}{
		{"missing", model.CalcRequest{}},
		{"below range", model.CalcRequest{Numbers: map[string]float64{"spot": 10}}},
		{"above range", model.CalcRequest{Numbers: map[string]float64{"spot": 1e9}}},
		{"NaN", model.CalcRequest{Numbers: map[string]float64{"spot": math.NaN()}}},
		{"Inf", model.CalcRequest{Numbers: map[string]float64{"spot": math.Inf(1)}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resolved := ResolveParams(newStubCfg(), c.req)
			// Плохое значение не ломает расчет, а заменяется дефолтом
			assert.Equal(t, 100.0, resolved.Numbers["spot"])
			assert.Equal(t, 0.05, resolved.Numbers["rate"])
		})
	}
}

func TestResolveParamsUnknownEnumValue(t *testing.T) {
	resolved := ResolveParams(newStubCfg(), model.CalcRequest{
		Enums: map[string]string{"mode": "sideways"},
	})
	assert.Equal(t, "mixed", resolved.Enums["mode"])
}

func TestResolveParamsIgnoresUnknownKeys(t *testing.T) {
	resolved := ResolveParams(newStubCfg(), model.CalcRequest{
		Numbers: map[string]float64{"bogus": 42},
	})
	_, ok := resolved.Numbers["bogus"]
	assert.False(t, ok)
}

func TestSourceFor(t *testing.T) {
	seed := int64(123)

	a := SourceFor(&seed)
	b := SourceFor(&seed)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}

	require.NotNil(t, SourceFor(nil))
}
