// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — единственный источник случайности симуляции.
// При одинаковом сиде и одинаковом вводе игра воспроизводится кадр в кадр.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService: сид 0 берётся из часов, фактический сид доступен через Seed.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed — сид, которым инициализирован генератор
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn — целое в [0, n)
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 — число в [0.0, 1.0)
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range — число в [min, max)
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
