package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   LeaderboardEntry
		wantErr bool
	}{
		{"valid entry", LeaderboardEntry{Name: "Mia", Score: 4, Date: "2026-08-28 10:00"}, false},
		{"zero score is valid", LeaderboardEntry{Name: "Mia", Score: 0}, false},
		{"max score is valid", LeaderboardEntry{Name: "Mia", Score: QuestionsPerCategory}, false},
		{"empty name", LeaderboardEntry{Name: "", Score: 3}, true},
		{"whitespace name", LeaderboardEntry{Name: "   ", Score: 3}, true},
		{"negative score", LeaderboardEntry{Name: "Mia", Score: -1}, true},
		{"score above maximum", LeaderboardEntry{Name: "Mia", Score: QuestionsPerCategory + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				var validationErrs ValidationErrors
				require.ErrorAs(t, err, &validationErrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRank(t *testing.T) {
	t.Run("orders by score descending", func(t *testing.T) {
		entries := []LeaderboardEntry{
			{Name: "A", Score: 3},
			{Name: "B", Score: 5},
			{Name: "C", Score: 1},
		}

		ranked := Rank(entries, LeaderboardTopN)

		require.Len(t, ranked, 3)
		assert.Equal(t, "B", ranked[0].Name)
		assert.Equal(t, "A", ranked[1].Name)
		assert.Equal(t, "C", ranked[2].Name)
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		entries := []LeaderboardEntry{
			{Name: "A", Score: 3},
			{Name: "B", Score: 5},
			{Name: "C", Score: 1},
			{Name: "D", Score: 5},
		}

		ranked := Rank(entries, LeaderboardTopN)

		assert.Equal(t, []string{"B", "D", "A", "C"}, rankedNames(ranked))
	})

	t.Run("truncates to n", func(t *testing.T) {
		entries := make([]LeaderboardEntry, 12)
		for i := range entries {
			entries[i] = LeaderboardEntry{Name: "P", Score: i % 6}
		}

		ranked := Rank(entries, LeaderboardTopN)

		assert.Len(t, ranked, LeaderboardTopN)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		entries := []LeaderboardEntry{
			{Name: "A", Score: 1},
			{Name: "B", Score: 5},
		}

		Rank(entries, LeaderboardTopN)

		assert.Equal(t, "A", entries[0].Name)
		assert.Equal(t, "B", entries[1].Name)
	})

	t.Run("empty input gives empty ranking", func(t *testing.T) {
		assert.Empty(t, Rank(nil, LeaderboardTopN))
	})
}

func rankedNames(entries []LeaderboardEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
