package rng

import "math/rand/v2"

// Source abstracts randomness so quest draws and evidence audits are
// reproducible in tests.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type SystemSource struct{}

func (SystemSource) Intn(n int) int {
	return rand.IntN(n)
}

func (SystemSource) Float64() float64 {
	return rand.Float64()
}

// Seeded returns a deterministic source for tests.
func Seeded(seed uint64) Source {
	return seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

type seededSource struct {
	r *rand.Rand
}

func (s seededSource) Intn(n int) int {
	return s.r.IntN(n)
}

func (s seededSource) Float64() float64 {
	return s.r.Float64()
}
