package kelly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantlab_backend/pkg/randsrc"
)

func TestFraction(t *testing.T) {
	// p=0.6, b=2: 0.6 - 0.4/2 = 0.4
	assert.InDelta(t, 0.4, Fraction(0.6, 2.0), 1e-15)

	// Отрицательная доля не клампится - это сигнал «не ставить»
	assert.InDelta(t, -0.4, Fraction(0.3, 1.0), 1e-15)

	// Вырожденный коэффициент выплаты
	assert.Equal(t, -1.0, Fraction(0.6, 0))
	assert.Equal(t, -1.0, Fraction(0.6, -2))
}

func TestGrowthRate(t *testing.T) {
	// f >= 1 - гарантированное разорение
	require.True(t, math.IsInf(GrowthRate(0.6, 2.0, 1.0), -1))
	require.True(t, math.IsInf(GrowthRate(0.6, 2.0, 1.5), -1))

	// При нулевой ставке роста нет
	assert.Equal(t, 0.0, GrowthRate(0.6, 2.0, 0))
}

func TestGrowthCurve(t *testing.T) {
	points := GrowthCurve(0.6, 2.0, 0.01)
	require.NotEmpty(t, points)

	var best GrowthPoint
	best.GrowthRate = math.Inf(-1)
	for _, p := range points {
		// ln от неположительного не считается: f < 1 на всей кривой
		require.Less(t, p.Fraction, 1.0)
		require.False(t, math.IsNaN(p.GrowthRate))
		if p.GrowthRate > best.GrowthRate {
			best = p
		}
	}

	// Максимум кривой - около доли Келли
	assert.InDelta(t, 0.4, best.Fraction, 0.011)

	assert.Empty(t, GrowthCurve(0.6, 0, 0.01))
	assert.Empty(t, GrowthCurve(0.6, 2.0, 0))
}

func TestSimulateCertainWinGrows(t *testing.T) {
	steps := Simulate(1000, 1.0, 2.0, 100, randsrc.New(42))
	require.Len(t, steps, 100)

	prevKelly, prevHalf := 1000.0, 1000.0
	for _, s := range steps {
		// При p=1 обе консервативные политики строго растут
		require.Greater(t, s.Kelly, prevKelly)
		require.Greater(t, s.HalfKelly, prevHalf)
		prevKelly, prevHalf = s.Kelly, s.HalfKelly
	}
}

func TestSimulateNeverNegative(t *testing.T) {
	for _, pWin := range []float64{0.0, 0.1, 0.3, 0.55, 0.9} {
		steps := Simulate(1000, pWin, 1.5, 200, randsrc.New(7))
		for _, s := range steps {
			require.GreaterOrEqual(t, s.Kelly, 0.0)
			require.GreaterOrEqual(t, s.HalfKelly, 0.0)
			require.GreaterOrEqual(t, s.OverBet, 0.0)
		}
	}
}

func TestSimulateRuinIsAbsorbing(t *testing.T) {
	// p=0.9, b=10: полный Келли 0.89, овербет упирается в 100% банкролла.
	// Первый же проигрыш обнуляет овербет - и он больше не восстанавливается
	steps := Simulate(1000, 0.9, 10.0, 500, randsrc.New(11))
	require.Len(t, steps, 500)

	ruined := false
	for _, s := range steps {
		if ruined {
			require.Equal(t, 0.0, s.OverBet)
		}
		if s.OverBet == 0 {
			ruined = true
		}
	}
	require.True(t, ruined, "за 500 ставок при p=0.9 проигрыш практически гарантирован")
}

func TestSimulateDeterministicWithSeed(t *testing.T) {
	a := Simulate(1000, 0.6, 2.0, 50, randsrc.New(99))
	b := Simulate(1000, 0.6, 2.0, 50, randsrc.New(99))
	assert.Equal(t, a, b)
}

func TestSimulateDegenerate(t *testing.T) {
	src := randsrc.New(1)
	assert.Empty(t, Simulate(0, 0.6, 2.0, 10, src))
	assert.Empty(t, Simulate(1000, 0.6, 2.0, 0, src))
	assert.Empty(t, Simulate(1000, 0.6, 0, 10, src))
}

func TestFractionalSweep(t *testing.T) {
	multiples := []float64{0.25, 0.5, 0.75, 1.0, 1.5}
	points := FractionalSweep(0.6, 2.0, multiples)
	require.Len(t, points, 5)

	var atFull, atOver SweepPoint
	for i, p := range points {
		require.False(t, math.IsNaN(p.GrowthRate))
		require.GreaterOrEqual(t, p.Volatility, 0.0)
		if i > 0 {
			// Волатильность растет с размером ставки
			require.Greater(t, p.Volatility, points[i-1].Volatility)
		}
		switch p.Multiple {
		case 1.0:
			atFull = p
		case 1.5:
			atOver = p
		}
	}

	// Полный Келли оптимален по росту, овербет уступает
	assert.Greater(t, atFull.GrowthRate, atOver.GrowthRate)
	assert.InDelta(t, 0.4, atFull.Fraction, 1e-12)
}
