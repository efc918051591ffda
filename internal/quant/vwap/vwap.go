package vwap

import (
	"math"

	"quantlab_backend/pkg/randsrc"
)

// MarketCondition - режим ценового блуждания внутри дня
type MarketCondition string

const (
	Trending MarketCondition = "trending"
	Choppy   MarketCondition = "choppy"
	Mixed    MarketCondition = "mixed"
)

// VolumePattern - форма распределения объема по барам
type VolumePattern string

const (
	UShaped      VolumePattern = "u-shaped"
	Declining    VolumePattern = "declining"
	RandomVolume VolumePattern = "random"
	Spike        VolumePattern = "spike"
)

const (
	// Базовый объем одного бара до применения формы и множителя
	baseVolume = 1000.0
	// Дрейф трендового режима за бар, в долях базовой цены
	trendDrift = 0.0008
	// Сила возврата к базовой цене в боковом режиме
	chopReversion = 0.08
	// Цена не опускается ниже этой доли базовой
	priceFloor = 0.1
)

// Bar - один интервал внутридневной симуляции
type Bar struct {
	Time   int
	Price  float64
	Volume float64
}

// SimulationParams - параметры внутридневной симуляции
type SimulationParams struct {
	BasePrice        float64
	VolumeMultiplier float64
	Volatility       float64 // Сигма шага за бар, в процентах от текущей цены
	NumIntervals     int
	Condition        MarketCondition
	Pattern          VolumePattern
}

// SimulateIntraday генерирует бары цена/объем: случайное блуждание,
// смещение и дисперсия которого зависят от режима рынка, объем - от
// выбранной формы. На вырожденных входах возвращает пустой результат
func SimulateIntraday(p SimulationParams, src randsrc.Source) []Bar {
	if p.NumIntervals <= 0 || p.BasePrice <= 0 {
		return nil
	}

	n := p.NumIntervals
	price := p.BasePrice
	bars := make([]Bar, 0, n)

	for i := 0; i < n; i++ {
		price += drift(p, price, i, n)
		price += src.NormFloat64() * p.Volatility / 100.0 * price

		if price < p.BasePrice*priceFloor {
			price = p.BasePrice * priceFloor
		}

		volume := baseVolume * p.VolumeMultiplier * volumeShape(p.Pattern, i, n, src)
		// Легкий джиттер, чтобы форма не выглядела синтетической
		volume *= 0.9 + 0.2*src.Float64()

		bars = append(bars, Bar{Time: i, Price: price, Volume: volume})
	}

	return bars
}

// drift - смещение шага цены по режиму рынка.
// В смешанном режиме первая половина дня трендовая, вторая боковая
func drift(p SimulationParams, price float64, i, n int) float64 {
	cond := p.Condition
	if cond == Mixed {
		if i < n/2 {
			cond = Trending
		} else {
			cond = Choppy
		}
	}

	switch cond {
	case Trending:
		return p.BasePrice * trendDrift
	case Choppy:
		return (p.BasePrice - price) * chopReversion
	default:
		return 0
	}
}

// volumeShape - множитель объема для бара i из n
func volumeShape(pattern VolumePattern, i, n int, src randsrc.Source) float64 {
	pos := 0.0
	if n > 1 {
		pos = float64(i) / float64(n-1)
	}

	switch pattern {
	case UShaped:
		// Параболическая «улыбка»: повышенный объем на открытии и закрытии
		u := 2.0*pos - 1.0
		return 0.6 + 1.4*u*u
	case Declining:
		// Монотонно убывающая огибающая
		return 1.8 - 1.4*pos
	case Spike:
		// Повышенный объем в средней трети дня
		if i >= n/3 && i < 2*n/3 {
			return 2.5
		}
		return 1.0
	case RandomVolume:
		return 0.4 + 1.6*src.Float64()
	default:
		return 1.0
	}
}

// ComputeVWAP - накопленный VWAP, выровненный по входному ряду:
// vwap[i] = sum(p*v) / sum(v) по барам 0..i.
// На первом баре равен его цене
func ComputeVWAP(bars []Bar) []float64 {
	if len(bars) == 0 {
		return nil
	}

	out := make([]float64, len(bars))
	var sumPV, sumV float64
	for i, b := range bars {
		sumPV += b.Price * b.Volume
		sumV += b.Volume
		if sumV == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sumPV / sumV
	}
	return out
}

// ComputeSMA - простая скользящая средняя цены за window баров.
// В начале ряда окно неполное: среднее по доступным барам
func ComputeSMA(bars []Bar, window int) []float64 {
	if len(bars) == 0 || window <= 0 {
		return nil
	}

	out := make([]float64, len(bars))
	var sum float64
	for i, b := range bars {
		sum += b.Price
		if i >= window {
			sum -= bars[i-window].Price
			out[i] = sum / float64(window)
			continue
		}
		out[i] = sum / float64(i+1)
	}
	return out
}
