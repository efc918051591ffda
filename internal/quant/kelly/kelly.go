package kelly

import (
	"math"

	"quantlab_backend/pkg/randsrc"
)

const (
	// Множитель агрессивной политики относительно полного Келли
	overBetMultiple = 2.0
	// Доля ставки не может достигать 100% банкролла
	maxBetFraction = 1.0
)

// GrowthPoint - ожидаемый логарифмический рост при данной доле ставки
type GrowthPoint struct {
	Fraction   float64
	GrowthRate float64
}

// Step - состояние банкроллов трех политик после очередной ставки.
// Банкролл не бывает отрицательным: ноль - поглощающее состояние
type Step struct {
	BetIndex  int
	Kelly     float64
	HalfKelly float64
	OverBet   float64
}

// SweepPoint - аналитическая оценка для дробного Келли:
// рост и волатильность логарифмической доходности за ставку
type SweepPoint struct {
	Multiple   float64
	Fraction   float64
	GrowthRate float64
	Volatility float64
}

// Fraction - доля Келли: p - (1-p)/b.
// Может быть отрицательной (сигнал «не ставить»), не клампится.
// Неположительный коэффициент выплаты - вырожденный вход, ставка запрещена
func Fraction(pWin, winLossRatio float64) float64 {
	if winLossRatio <= 0 {
		return -1
	}
	return pWin - (1.0-pWin)/winLossRatio
}

// GrowthRate - ожидаемый лог-рост на ставку при доле f:
// p*ln(1+f*b) + (1-p)*ln(1-f).
// Для f >= 1 (гарантированное разорение) возвращает -Inf
func GrowthRate(pWin, winLossRatio, f float64) float64 {
	if f >= maxBetFraction {
		return math.Inf(-1)
	}
	if f < 0 {
		f = 0
	}
	return pWin*math.Log(1.0+f*winLossRatio) + (1.0-pWin)*math.Log(1.0-f)
}

// GrowthCurve - кривая роста по доле ставки от 0 до 99% с шагом step.
// Точки с f >= 1 исключаются, а не считаются через ln от неположительного
func GrowthCurve(pWin, winLossRatio, step float64) []GrowthPoint {
	if winLossRatio <= 0 || step <= 0 {
		return nil
	}

	var points []GrowthPoint
	for f := 0.0; f < maxBetFraction; f += step {
		points = append(points, GrowthPoint{
			Fraction:   f,
			GrowthRate: GrowthRate(pWin, winLossRatio, f),
		})
	}
	return points
}

// Simulate - траектории банкролла для трех политик: полный Келли
// (в симуляции клампится к нулю снизу), половинный и двукратный
// (не выше 100% банкролла). Исход каждой ставки один на все политики,
// чтобы траектории были сопоставимы
func Simulate(initialBankroll, pWin, winLossRatio float64, numberOfBets int, src randsrc.Source) []Step {
	if initialBankroll <= 0 || numberOfBets <= 0 || winLossRatio <= 0 {
		return nil
	}

	kellyF := Fraction(pWin, winLossRatio)
	if kellyF < 0 {
		kellyF = 0
	}
	halfF := kellyF / 2.0
	overF := kellyF * overBetMultiple
	if overF > maxBetFraction {
		overF = maxBetFraction
	}

	cur := Step{Kelly: initialBankroll, HalfKelly: initialBankroll, OverBet: initialBankroll}

	steps := make([]Step, 0, numberOfBets)
	for bet := 1; bet <= numberOfBets; bet++ {
		win := src.Float64() < pWin

		cur.Kelly = applyBet(cur.Kelly, kellyF, winLossRatio, win)
		cur.HalfKelly = applyBet(cur.HalfKelly, halfF, winLossRatio, win)
		cur.OverBet = applyBet(cur.OverBet, overF, winLossRatio, win)
		cur.BetIndex = bet

		steps = append(steps, cur)
	}

	return steps
}

// applyBet обновляет банкролл после одной ставки.
// Ноль поглощает: разорившаяся политика не восстанавливается
func applyBet(bankroll, fraction, ratio float64, win bool) float64 {
	if bankroll <= 0 {
		return 0
	}

	if win {
		bankroll += bankroll * fraction * ratio
	} else {
		bankroll -= bankroll * fraction
	}

	if bankroll < 0 {
		return 0
	}
	return bankroll
}

// FractionalSweep - аналитика по кратным долям Келли (без ресимуляции).
// Волатильность - стандартное отклонение лог-доходности за ставку:
// sqrt(p*(1-p)) * (ln(1+f*b) - ln(1-f))
func FractionalSweep(pWin, winLossRatio float64, multiples []float64) []SweepPoint {
	if winLossRatio <= 0 {
		return nil
	}

	kellyF := Fraction(pWin, winLossRatio)
	if kellyF < 0 {
		kellyF = 0
	}

	points := make([]SweepPoint, 0, len(multiples))
	for _, m := range multiples {
		f := kellyF * m
		if f >= maxBetFraction {
			f = maxBetFraction - 1e-9
		}

		spread := math.Log(1.0+f*winLossRatio) - math.Log(1.0-f)

		points = append(points, SweepPoint{
			Multiple:   m,
			Fraction:   f,
			GrowthRate: GrowthRate(pWin, winLossRatio, f),
			Volatility: math.Sqrt(pWin*(1.0-pWin)) * spread,
		})
	}

	return points
}
