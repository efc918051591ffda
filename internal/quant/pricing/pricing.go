package pricing

import "math"

const (
	// Количество точек плотности терминальной цены
	densityPoints = 201
	// Диапазон стандартизованной величины: ±4 сигмы
	densityRange = 4.0
)

// DensityPoint - точка риск-нейтральной плотности терминальной цены
type DensityPoint struct {
	Price         float64 // Цена по сетке без сноса
	TerminalPrice float64 // Терминальная цена с риск-нейтральным сносом
	Density       float64 // Плотность стандартного нормального
	ScaledDensity float64 // Плотность, нормированная на максимум (для графика)
}

// TimePoint - цена колла в зависимости от срока до экспирации
type TimePoint struct {
	Days  int
	Price float64
}

// VolPoint - цена колла в зависимости от волатильности
type VolPoint struct {
	Volatility float64
	Price      float64
}

// Коэффициенты аппроксимации Абрамовица-Стегуна (7.1.26),
// максимальная абсолютная ошибка ~1.5e-7
const (
	asP  = 0.3275911
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
)

// NormCDF - функция распределения стандартного нормального
// через аппроксимацию функции ошибок
func NormCDF(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	z := x / math.Sqrt2
	t := 1.0 / (1.0 + asP*z)
	y := 1.0 - (((((asA5*t+asA4)*t)+asA3)*t+asA2)*t+asA1)*t*math.Exp(-z*z)

	return 0.5 * (1.0 + sign*y)
}

// DiscountFactor - дисконт-фактор e^(-r*T).
// При T = 0 равен единице, убывает по обоим аргументам
func DiscountFactor(rate, timeYears float64) float64 {
	return math.Exp(-rate * timeYears)
}

// CallPrice - цена европейского колла по Блэку-Шоулзу.
// На вырожденных входах (T <= 0 или sigma <= 0) сходится
// к внутренней стоимости max(S-K, 0), результат не бывает отрицательным
func CallPrice(spot, strike, rate, volatility, timeYears float64) float64 {
	if spot <= 0 || strike <= 0 {
		return 0
	}
	if timeYears <= 0 || volatility <= 0 {
		return math.Max(spot-strike, 0)
	}

	sqrtT := math.Sqrt(timeYears)
	d1 := (math.Log(spot/strike) + (rate+0.5*volatility*volatility)*timeYears) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	price := spot*NormCDF(d1) - strike*DiscountFactor(rate, timeYears)*NormCDF(d2)
	if price < 0 {
		return 0
	}
	return price
}

// TerminalPriceDensity - риск-нейтральная плотность терминальной цены.
// Сетка по стандартизованной величине z в пределах ±4 сигм, 201 точка.
// На вырожденных входах возвращает пустой срез, а не NaN
func TerminalPriceDensity(spot, rate, volatility, timeYears float64) []DensityPoint {
	if spot <= 0 || volatility <= 0 || timeYears <= 0 {
		return nil
	}

	sigmaT := volatility * math.Sqrt(timeYears)
	drift := (rate - 0.5*volatility*volatility) * timeYears
	peak := 1.0 / math.Sqrt(2.0*math.Pi)

	points := make([]DensityPoint, 0, densityPoints)
	for i := 0; i < densityPoints; i++ {
		z := -densityRange + 2.0*densityRange*float64(i)/float64(densityPoints-1)
		density := math.Exp(-0.5*z*z) / math.Sqrt(2.0*math.Pi)

		points = append(points, DensityPoint{
			Price:         spot * math.Exp(sigmaT*z),
			TerminalPrice: spot * math.Exp(drift+sigmaT*z),
			Density:       density,
			ScaledDensity: density / peak,
		})
	}

	return points
}

// CallPriceOverTime - срез цены колла по сроку: дни 1..730 с шагом 5
func CallPriceOverTime(spot, strike, rate, volatility float64) []TimePoint {
	points := make([]TimePoint, 0, 146)
	for days := 1; days <= 730; days += 5 {
		points = append(points, TimePoint{
			Days:  days,
			Price: CallPrice(spot, strike, rate, volatility, float64(days)/365.0),
		})
	}
	return points
}

// CallPriceOverVol - срез цены колла по волатильности: 0.05..0.80 с шагом 0.01
func CallPriceOverVol(spot, strike, rate, timeYears float64) []VolPoint {
	points := make([]VolPoint, 0, 76)
	for v := 5; v <= 80; v++ {
		vol := float64(v) / 100.0
		points = append(points, VolPoint{
			Volatility: vol,
			Price:      CallPrice(spot, strike, rate, vol, timeYears),
		})
	}
	return points
}
