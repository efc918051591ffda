package spectral

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantlab_backend/pkg/randsrc"
)

func TestSynthesize(t *testing.T) {
	p := SynthesisParams{
		Period1:       20,
		Period2:       50,
		Amplitude1:    1.0,
		Amplitude2:    0.8,
		NoiseLevel:    0.5,
		DataPoints:    200,
		TrendStrength: 1.0,
	}

	s := Synthesize(p, randsrc.New(42))
	require.Len(t, s.Cycle1, 200)
	require.Len(t, s.Cycle2, 200)
	require.Len(t, s.Composite, 200)

	// Один и тот же сид дает один и тот же ряд
	again := Synthesize(p, randsrc.New(42))
	assert.Equal(t, s.Composite, again.Composite)
}

func TestSynthesizeWithoutNoiseIsSumOfCycles(t *testing.T) {
	p := SynthesisParams{
		Period1:    20,
		Period2:    50,
		Amplitude1: 1.0,
		Amplitude2: 0.8,
		DataPoints: 100,
	}

	s := Synthesize(p, randsrc.New(1))
	for i := range s.Composite {
		require.InDelta(t, s.Cycle1[i]+s.Cycle2[i], s.Composite[i], 1e-12)
	}
}

func TestSynthesizeDegenerate(t *testing.T) {
	src := randsrc.New(1)

	s := Synthesize(SynthesisParams{Period1: 20, Period2: 50, DataPoints: 9}, src)
	assert.Empty(t, s.Composite)

	s = Synthesize(SynthesisParams{Period1: 0, Period2: 50, DataPoints: 100}, src)
	assert.Empty(t, s.Composite)

	s = Synthesize(SynthesisParams{Period1: 20, Period2: -5, DataPoints: 100}, src)
	assert.Empty(t, s.Composite)
}

func TestEstimateSpectrumNonNegative(t *testing.T) {
	p := SynthesisParams{
		Period1:    20,
		Period2:    50,
		Amplitude1: 1.0,
		Amplitude2: 0.8,
		NoiseLevel: 1.0,
		DataPoints: 200,
	}
	s := Synthesize(p, randsrc.New(7))

	spectrum := EstimateSpectrum(s.Composite, 20, 50)
	require.NotEmpty(t, spectrum)
	for _, pt := range spectrum {
		require.GreaterOrEqual(t, pt.Magnitude, 0.0)
		require.Greater(t, pt.Period, 0)
	}
}

func TestEstimateSpectrumMinBoundary(t *testing.T) {
	// Ровно 10 точек - нижняя граница, считается без паники
	composite := []float64{1, -1, 1, -1, 1, -1, 1, -1, 1, -1}
	spectrum := EstimateSpectrum(composite, 5, 5)
	require.Len(t, spectrum, 1)
	assert.Equal(t, 5, spectrum[0].Period)

	assert.Empty(t, EstimateSpectrum(composite[:9], 5, 5))
}

func TestEstimateSpectrumPeaksAtSeededPeriods(t *testing.T) {
	// Сквозной сценарий: без шума и тренда пики (после усиления)
	// приходятся на заложенные периоды 20 и 50
	p := SynthesisParams{
		Period1:    20,
		Period2:    50,
		Amplitude1: 1.0,
		Amplitude2: 0.8,
		DataPoints: 200,
	}
	s := Synthesize(p, randsrc.New(3))

	spectrum := EstimateSpectrum(s.Composite, p.Period1, p.Period2)
	require.NotEmpty(t, spectrum)

	sorted := make([]SpectrumPoint, len(spectrum))
	copy(sorted, spectrum)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Magnitude > sorted[j].Magnitude })

	top := []int{sorted[0].Period, sorted[1].Period}
	assert.Contains(t, top, 20)
	assert.Contains(t, top, 50)
}

func TestNyquistCheck(t *testing.T) {
	res := NyquistCheck(100, []float64{5, 15})
	assert.Equal(t, 50.0, res.NyquistFrequency)
	assert.False(t, res.AliasingRisk)

	res = NyquistCheck(20, []float64{15})
	assert.Equal(t, 10.0, res.NyquistFrequency)
	assert.True(t, res.AliasingRisk)

	// Граница: частота ровно в Найквисте уже не восстановима
	res = NyquistCheck(100, []float64{50})
	assert.True(t, res.AliasingRisk)
}
