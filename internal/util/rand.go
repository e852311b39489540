package util

import (
	"math/rand"
	"sync"
)

// LockedRand guards a rand.Rand with a mutex so one process-wide generator
// can be shared by concurrently served requests. It covers both consumers of
// randomness: waveform sampling (Float64) and question shuffling (Shuffle).
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand creates a generator seeded with seed.
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Shuffle pseudo-randomizes the order of n elements through swap.
func (l *LockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
