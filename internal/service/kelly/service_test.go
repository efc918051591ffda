package kelly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
)

type stubCfg struct{}

func (c *stubCfg) Name() string { return "kelly-criterion" }

func (c *stubCfg) NumberParams() map[string]config.NumberParam {
	return map[string]config.NumberParam{
		"winProbability":  {Default: 0.6, Min: 0.3, Max: 0.8, Step: 0.01},
		"winLossRatio":    {Default: 2.0, Min: 0.5, Max: 5, Step: 0.1},
		"initialBankroll": {Default: 1000, Min: 100, Max: 10000, Step: 100},
		"numberOfBets":    {Default: 100, Min: 10, Max: 500, Step: 10},
	}
}

func (c *stubCfg) EnumParams() map[string]config.EnumParam { return nil }

func TestCalculateWithDefaults(t *testing.T) {
	serv := NewKellyService(&stubCfg{})

	seed := int64(42)
	res, err := serv.Calculate(model.CalcRequest{Seed: &seed})
	require.NoError(t, err)

	// Пустой запрос считается на дефолтах: p=0.6, b=2 -> доля 0.4
	assert.InDelta(t, 0.4, res.Fraction, 1e-15)
	assert.Len(t, res.Trajectory, 100)
	assert.Len(t, res.Sweep, 5)
	assert.NotEmpty(t, res.GrowthCurve)
}

func TestCalculateSeededIsReproducible(t *testing.T) {
	serv := NewKellyService(&stubCfg{})

	seed := int64(7)
	req := model.CalcRequest{
		Numbers: map[string]float64{"winProbability": 0.55, "numberOfBets": 50},
		Seed:    &seed,
	}

	a, err := serv.Calculate(req)
	require.NoError(t, err)
	b, err := serv.Calculate(req)
	require.NoError(t, err)

	assert.Equal(t, a.Trajectory, b.Trajectory)
}

func TestCalculateClampsBadInput(t *testing.T) {
	serv := NewKellyService(&stubCfg{})

	seed := int64(1)
	res, err := serv.Calculate(model.CalcRequest{
		Numbers: map[string]float64{"winProbability": 50, "numberOfBets": -5},
		Seed:    &seed,
	})
	require.NoError(t, err)

	// Значения вне диапазона заменены дефолтами, расчет не сломан
	assert.Equal(t, 0.6, res.Params.Numbers["winProbability"])
	assert.Len(t, res.Trajectory, 100)
	for _, s := range res.Trajectory {
		require.GreaterOrEqual(t, s.Kelly, 0.0)
	}
}
