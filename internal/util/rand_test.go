package util

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedRand_MatchesSeededRand(t *testing.T) {
	locked := NewLockedRand(42)
	plain := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, plain.Float64(), locked.Float64())
	}
}

func TestLockedRand_ConcurrentUse(t *testing.T) {
	rng := NewLockedRand(1)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deck := make([]int, 16)
			for i := 0; i < 200; i++ {
				v := rng.Float64()
				if v < 0 || v >= 1 {
					t.Errorf("Float64 out of range: %v", v)
				}
				rng.Shuffle(len(deck), func(i, j int) {
					deck[i], deck[j] = deck[j], deck[i]
				})
			}
		}()
	}
	wg.Wait()
}
