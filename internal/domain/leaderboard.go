package domain

import (
	"sort"
	"strings"
)

// LeaderboardDateLayout is the display format persisted with every entry.
const LeaderboardDateLayout = "2006-01-02 15:04"

// LeaderboardTopN is the number of entries shown on the ranking view.
const LeaderboardTopN = 10

// LeaderboardEntry is one persisted quiz result.
type LeaderboardEntry struct {
	Name  string `json:"name" db:"name"`
	Score int    `json:"score" db:"score"`
	Date  string `json:"date" db:"recorded_at"`
}

// Validate validates the entry before it is appended to the store.
func (e LeaderboardEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ValidationErrors{NewMissingFieldError("name")}
	}
	if e.Score < 0 || e.Score > QuestionsPerCategory {
		return ValidationErrors{NewOutOfRangeError("score", e.Score, 0, QuestionsPerCategory)}
	}
	return nil
}

// Rank returns the top-n entries ordered by score descending. Ties keep
// their original insertion order (stable sort), and the input is not mutated.
func Rank(entries []LeaderboardEntry, n int) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// LeaderboardRepository is the port for the durable score store. Load treats
// an absent store as an empty collection, not an error. Append is
// load-modify-save; the single-writer assumption is enforced by the
// implementation.
type LeaderboardRepository interface {
	Load() ([]LeaderboardEntry, error)
	Save(entries []LeaderboardEntry) error
	Append(entry LeaderboardEntry) error
}
