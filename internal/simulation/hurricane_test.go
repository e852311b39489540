package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupHurricane(t *testing.T) {
	tests := []struct {
		level      HurricaneLevel
		category   string
		windSpeed  string
		stormSurge string
		color      string
		gauge      float64
	}{
		{HurricaneLow, "Category 1", "74-95 mph", "4-5 feet", "yellow", 84.5},
		{HurricaneModerate, "Category 2-3", "96-129 mph", "6-12 feet", "orange", 112.5},
		{HurricaneHigh, "Category 4", "130-156 mph", "13-18 feet", "red", 143},
		{HurricaneExtreme, "Category 5", "157+ mph", "19+ feet", "purple", 178.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			profile, ok := LookupHurricane(tt.level)

			require.True(t, ok)
			assert.Equal(t, tt.level, profile.Level)
			assert.Equal(t, tt.category, profile.Category)
			assert.Equal(t, tt.windSpeed, profile.WindSpeed)
			assert.Equal(t, tt.stormSurge, profile.StormSurge)
			assert.Equal(t, tt.color, profile.Color)
			assert.Equal(t, tt.gauge, profile.GaugeValue)
			assert.NotEmpty(t, profile.Precautions)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		_, ok := LookupHurricane(HurricaneLevel("Catastrophic"))
		assert.False(t, ok)
	})
}

func TestHurricaneLevel_IsValid(t *testing.T) {
	assert.True(t, HurricaneModerate.IsValid())
	assert.False(t, HurricaneLevel("medium").IsValid())
}
