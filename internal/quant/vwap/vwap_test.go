package vwap

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantlab_backend/pkg/randsrc"
)

func TestComputeVWAPSingleBar(t *testing.T) {
	out := ComputeVWAP([]Bar{{Time: 0, Price: 101.5, Volume: 1200}})
	require.Len(t, out, 1)
	assert.Equal(t, 101.5, out[0])
}

func TestComputeVWAPHandCheck(t *testing.T) {
	bars := []Bar{
		{Time: 0, Price: 10, Volume: 100},
		{Time: 1, Price: 12, Volume: 300},
	}
	out := ComputeVWAP(bars)
	require.Len(t, out, 2)
	assert.Equal(t, 10.0, out[0])
	// (10*100 + 12*300) / 400 = 11.5
	assert.InDelta(t, 11.5, out[1], 1e-12)

	assert.Empty(t, ComputeVWAP(nil))
}

func TestComputeSMAPartialWindow(t *testing.T) {
	bars := []Bar{
		{Price: 1}, {Price: 2}, {Price: 3}, {Price: 4}, {Price: 5},
	}
	out := ComputeSMA(bars, 3)
	require.Len(t, out, 5)

	// Неполное окно в начале ряда усредняет доступные бары
	assert.InDelta(t, 1.0, out[0], 1e-12)
	assert.InDelta(t, 1.5, out[1], 1e-12)
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 4.0, out[4], 1e-12)

	assert.Empty(t, ComputeSMA(bars, 0))
	assert.Empty(t, ComputeSMA(nil, 3))
}

func TestSimulateIntraday(t *testing.T) {
	p := SimulationParams{
		BasePrice:        100,
		VolumeMultiplier: 1,
		Volatility:       0.5,
		NumIntervals:     78,
		Condition:        Mixed,
		Pattern:          UShaped,
	}

	bars := SimulateIntraday(p, randsrc.New(42))
	require.Len(t, bars, 78)
	for i, b := range bars {
		require.Equal(t, i, b.Time)
		require.Greater(t, b.Price, 0.0)
		require.Greater(t, b.Volume, 0.0)
	}

	// Сид фиксирует траекторию
	again := SimulateIntraday(p, randsrc.New(42))
	assert.Equal(t, bars, again)
}

func TestSimulateIntradayDegenerate(t *testing.T) {
	src := randsrc.New(1)
	assert.Empty(t, SimulateIntraday(SimulationParams{BasePrice: 100}, src))
	assert.Empty(t, SimulateIntraday(SimulationParams{NumIntervals: 10}, src))
}

func TestVolumePatterns(t *testing.T) {
	base := SimulationParams{
		BasePrice:        100,
		VolumeMultiplier: 1,
		Volatility:       0.5,
		NumIntervals:     60,
	}

	t.Run("u-shaped", func(t *testing.T) {
		p := base
		p.Pattern = UShaped
		bars := SimulateIntraday(p, randsrc.New(5))
		// Открытие и закрытие активнее середины дня
		mid := bars[len(bars)/2]
		require.Greater(t, bars[0].Volume, mid.Volume)
		require.Greater(t, bars[len(bars)-1].Volume, mid.Volume)
	})

	t.Run("declining", func(t *testing.T) {
		p := base
		p.Pattern = Declining
		bars := SimulateIntraday(p, randsrc.New(5))
		require.Greater(t, bars[0].Volume, bars[len(bars)-1].Volume)
	})

	t.Run("spike", func(t *testing.T) {
		p := base
		p.Pattern = Spike
		bars := SimulateIntraday(p, randsrc.New(5))
		require.Greater(t, bars[len(bars)/2].Volume, bars[0].Volume)
	})

	t.Run("random bounded", func(t *testing.T) {
		p := base
		p.Pattern = RandomVolume
		bars := SimulateIntraday(p, randsrc.New(5))
		for _, b := range bars {
			require.Greater(t, b.Volume, 0.0)
			require.Less(t, b.Volume, baseVolume*2.2)
		}
	})
}

func TestCalculationTable(t *testing.T) {
	bars := []Bar{
		{Time: 0, Price: 10, Volume: 100},
		{Time: 1, Price: 12, Volume: 300},
		{Time: 2, Price: 11, Volume: 200},
	}

	rows := CalculationTable(bars)
	require.Len(t, rows, 3)

	// Первая строка: VWAP равен цене бара
	assert.True(t, rows[0].VWAP.Equal(decimal.NewFromInt(10)))

	// Накопленные суммы сходятся со строками
	assert.True(t, rows[1].CumPriceVolume.Equal(decimal.NewFromInt(4600)))
	assert.True(t, rows[1].CumVolume.Equal(decimal.NewFromInt(400)))
	assert.True(t, rows[1].VWAP.Equal(decimal.RequireFromString("11.5")))

	assert.True(t, rows[2].CumPriceVolume.Equal(decimal.NewFromInt(6800)))
	assert.True(t, rows[2].CumVolume.Equal(decimal.NewFromInt(600)))
	// 6800/600 = 11.3333 с округлением до 4 знаков
	assert.True(t, rows[2].VWAP.Equal(decimal.RequireFromString("11.3333")))

	// Таблица и поток через float64 считают одно и то же
	floatVWAP := ComputeVWAP(bars)
	last, _ := rows[2].VWAP.Float64()
	assert.InDelta(t, floatVWAP[2], last, 1e-4)

	assert.Empty(t, CalculationTable(nil))
}
