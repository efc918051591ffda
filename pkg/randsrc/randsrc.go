package randsrc

import (
	"math/rand"
	"time"
)

// Source - источник случайности для расчётных модулей.
// Передается явно, чтобы в тестах можно было подставить сид
type Source interface {
	// Float64 возвращает число из [0, 1)
	Float64() float64
	// NormFloat64 возвращает число из стандартного нормального распределения
	NormFloat64() float64
}

type source struct {
	rng *rand.Rand
}

// New создает детерминированный источник по сиду
func New(seed int64) Source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

// NewUnseeded создает источник от текущего времени (для «живых» графиков)
func NewUnseeded() Source {
	return &source{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *source) Float64() float64 {
	return s.rng.Float64()
}

func (s *source) NormFloat64() float64 {
	return s.rng.NormFloat64()
}
