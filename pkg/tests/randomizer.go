package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Intn:    random.Intn,
	}
}

// Between returns a value in [lo, hi) truncated to one decimal place, the
// precision a weather station reports.
func (r Randomizer) Between(lo, hi float64) float64 {
	v := lo + r.Float64()*(hi-lo)

	return float64(int(v*10)) / 10 //nolint:mnd
}
