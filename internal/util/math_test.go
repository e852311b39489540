package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{"two places", 796.8939, 2, 796.89},
		{"rounds up", 2.806, 2, 2.81},
		{"one place", 11.25, 1, 11.3},
		{"zero places", 2.4, 0, 2},
		{"negative value", -1.26, 1, -1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundTo(tt.value, tt.places), 1e-9)
		})
	}
}
