package spectral

import (
	"math"

	"quantlab_backend/pkg/randsrc"
)

const (
	// Минимальная длина ряда для оценки спектра
	minDataPoints = 10
	// Кандидатные периоды: от 5 до min(n/2, 100) с шагом 5
	minPeriod  = 5
	maxPeriod  = 100
	periodStep = 5
	// Педагогические усиления доминирующих циклов,
	// чтобы пики были различимы на фоне шума оценщика
	boostPrimary   = 3.0
	boostSecondary = 2.5
	boostWindow    = 2
)

// SynthesisParams - параметры синтеза составного ряда
type SynthesisParams struct {
	Period1       int
	Period2       int
	Amplitude1    float64
	Amplitude2    float64
	NoiseLevel    float64
	DataPoints    int
	TrendStrength float64
}

// Series - синтезированные ряды: два чистых цикла и их композиция
// с линейным трендом и равномерным шумом
type Series struct {
	Cycle1    []float64
	Cycle2    []float64
	Composite []float64
}

// SpectrumPoint - оценка магнитуды на кандидатном периоде.
// Магнитуда неотрицательна по построению
type SpectrumPoint struct {
	Period    int
	Magnitude float64
}

// NyquistResult - проверка на алиасинг
type NyquistResult struct {
	NyquistFrequency float64
	AliasingRisk     bool
}

// Synthesize строит ряды длины DataPoints: cycle1, cycle2 и
// composite = cycle1 + cycle2 + тренд + шум.
// На вырожденных входах возвращает пустые ряды
func Synthesize(p SynthesisParams, src randsrc.Source) Series {
	if p.DataPoints < minDataPoints || p.Period1 <= 0 || p.Period2 <= 0 {
		return Series{}
	}

	n := p.DataPoints
	s := Series{
		Cycle1:    make([]float64, n),
		Cycle2:    make([]float64, n),
		Composite: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		s.Cycle1[i] = p.Amplitude1 * math.Sin(2.0*math.Pi*float64(i)/float64(p.Period1))
		s.Cycle2[i] = p.Amplitude2 * math.Sin(2.0*math.Pi*float64(i)/float64(p.Period2))

		trend := p.TrendStrength * float64(i) / float64(n)
		noise := (src.Float64()*2.0 - 1.0) * p.NoiseLevel

		s.Composite[i] = s.Cycle1[i] + s.Cycle2[i] + trend + noise
	}

	return s
}

// EstimateSpectrum - грубая оценка магнитуды по кандидатным периодам:
// среднее |x[i]*cos(2*pi*i/period)|. Это не FFT - оценка намеренно
// простая, с усилением окрестностей period1/period2 для наглядности
func EstimateSpectrum(composite []float64, period1, period2 int) []SpectrumPoint {
	n := len(composite)
	if n < minDataPoints {
		return nil
	}

	upper := n / 2
	if upper > maxPeriod {
		upper = maxPeriod
	}

	var points []SpectrumPoint
	for period := minPeriod; period <= upper; period += periodStep {
		var sum float64
		for i := 0; i < n; i++ {
			sum += math.Abs(composite[i] * math.Cos(2.0*math.Pi*float64(i)/float64(period)))
		}
		magnitude := sum / float64(n)

		// Усиление вблизи заложенных периодов
		switch {
		case abs(period-period1) <= boostWindow:
			magnitude *= boostPrimary
		case abs(period-period2) <= boostWindow:
			magnitude *= boostSecondary
		}

		points = append(points, SpectrumPoint{Period: period, Magnitude: magnitude})
	}

	return points
}

// NyquistCheck - частота Найквиста и флаг риска алиасинга:
// любая входная частота >= sampleRate/2 не восстановима однозначно
func NyquistCheck(sampleRate float64, frequencies []float64) NyquistResult {
	res := NyquistResult{NyquistFrequency: sampleRate / 2.0}
	for _, f := range frequencies {
		if f >= res.NyquistFrequency {
			res.AliasingRisk = true
			break
		}
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
