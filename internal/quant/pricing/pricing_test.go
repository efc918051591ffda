package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormCDF(t *testing.T) {
	// Аппроксимация с ошибкой не хуже 1.5e-7
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1, 0.8413447461},
		{-1, 0.1586552539},
		{1.96, 0.9750021049},
		{-1.96, 0.0249978951},
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, NormCDF(c.x), 1.5e-7)
	}
}

func TestDiscountFactor(t *testing.T) {
	require.Equal(t, 1.0, DiscountFactor(0.05, 0))
	require.Equal(t, 1.0, DiscountFactor(0, 10))

	// В (0, 1] и убывает по ставке и по сроку
	prev := 1.0
	for _, ty := range []float64{0.5, 1, 2, 5, 10} {
		df := DiscountFactor(0.05, ty)
		require.Greater(t, df, 0.0)
		require.LessOrEqual(t, df, 1.0)
		require.Less(t, df, prev)
		prev = df
	}

	require.Less(t, DiscountFactor(0.10, 1), DiscountFactor(0.05, 1))
}

func TestCallPriceGolden(t *testing.T) {
	// Опорное значение: S=K=100, r=5%, sigma=20%, T=90 дней
	price := CallPrice(100, 100, 0.05, 0.2, 90.0/365.0)
	require.InDelta(t, 4.58, price, 0.03)
}

func TestCallPriceNonNegative(t *testing.T) {
	cases := [][5]float64{
		{100, 100, 0.05, 0.2, 0.25},
		{50, 150, 0.05, 0.4, 1},
		{100, 100, 0, 0.01, 0.01},
		{200, 100, 0.1, 0.8, 2},
	}
	for _, c := range cases {
		require.GreaterOrEqual(t, CallPrice(c[0], c[1], c[2], c[3], c[4]), 0.0)
	}
}

func TestCallPriceConvergesToIntrinsic(t *testing.T) {
	// sigma -> 0: внутренняя стоимость (при нулевой ставке)
	assert.InDelta(t, 10.0, CallPrice(110, 100, 0, 1e-9, 0.5), 1e-3)
	assert.InDelta(t, 0.0, CallPrice(90, 100, 0, 1e-9, 0.5), 1e-3)

	// T -> 0 аналогично
	assert.InDelta(t, 10.0, CallPrice(110, 100, 0.05, 0.2, 1e-9), 1e-3)

	// Вырожденные входы отдают ровно внутреннюю стоимость
	assert.Equal(t, 10.0, CallPrice(110, 100, 0.05, 0, 0.5))
	assert.Equal(t, 0.0, CallPrice(90, 100, 0.05, 0.2, 0))
}

func TestCallPriceLargeVolApproachesSpot(t *testing.T) {
	price := CallPrice(100, 100, 0.05, 50, 1)
	assert.InDelta(t, 100.0, price, 0.5)
}

func TestTerminalPriceDensity(t *testing.T) {
	points := TerminalPriceDensity(100, 0.05, 0.2, 0.5)
	require.Len(t, points, 201)

	// Пик нормированной плотности в центре сетки
	assert.InDelta(t, 1.0, points[100].ScaledDensity, 1e-12)

	for i, p := range points {
		require.Greater(t, p.Density, 0.0)
		require.Greater(t, p.TerminalPrice, 0.0)
		if i > 0 {
			require.Greater(t, p.Price, points[i-1].Price)
		}
	}
}

func TestTerminalPriceDensityDegenerate(t *testing.T) {
	// Плохой вход не ломает расчет, а дает пустой результат
	assert.Empty(t, TerminalPriceDensity(100, 0.05, 0.2, 0))
	assert.Empty(t, TerminalPriceDensity(100, 0.05, 0, 0.5))
	assert.Empty(t, TerminalPriceDensity(100, 0.05, -0.2, -1))
	assert.Empty(t, TerminalPriceDensity(0, 0.05, 0.2, 0.5))
}

func TestCallPriceCurves(t *testing.T) {
	overTime := CallPriceOverTime(100, 100, 0.05, 0.2)
	require.Len(t, overTime, 146)
	assert.Equal(t, 1, overTime[0].Days)
	assert.Equal(t, 726, overTime[len(overTime)-1].Days)

	// ATM колл дорожает со сроком
	require.Less(t, overTime[0].Price, overTime[len(overTime)-1].Price)

	overVol := CallPriceOverVol(100, 100, 0.05, 0.25)
	require.Len(t, overVol, 76)
	assert.InDelta(t, 0.05, overVol[0].Volatility, 1e-12)
	assert.InDelta(t, 0.80, overVol[len(overVol)-1].Volatility, 1e-12)

	// И с волатильностью
	for i := 1; i < len(overVol); i++ {
		require.Greater(t, overVol[i].Price, overVol[i-1].Price)
	}

	for _, p := range overTime {
		require.False(t, math.IsNaN(p.Price))
	}
}
