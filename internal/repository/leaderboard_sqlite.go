package repository

import (
	"sync"

	"disasterguard/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SQLLeaderboardRepository is the SQL-backed leaderboard store, used with the
// embedded sqlite backend. It keeps the same read-whole/write-whole contract
// as the file store so the two are interchangeable behind the repository
// port.
type SQLLeaderboardRepository struct {
	mu sync.Mutex
	db *sqlx.DB
}

// NewSQLLeaderboardRepository creates a store over an already connected and
// migrated database.
func NewSQLLeaderboardRepository(db *sqlx.DB) *SQLLeaderboardRepository {
	return &SQLLeaderboardRepository{db: db}
}

// Load returns all entries in insertion order.
func (r *SQLLeaderboardRepository) Load() ([]domain.LeaderboardEntry, error) {
	entries := []domain.LeaderboardEntry{}
	err := r.db.Select(&entries,
		`SELECT name, score, recorded_at FROM leaderboard_entries ORDER BY id ASC`)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load leaderboard entries", err)
	}
	return entries, nil
}

// Save replaces the full collection with entries, preserving their order.
func (r *SQLLeaderboardRepository) Save(entries []domain.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Beginx()
	if err != nil {
		return domain.NewPersistenceError("failed to begin leaderboard transaction", err)
	}

	if _, err := tx.Exec(`DELETE FROM leaderboard_entries`); err != nil {
		tx.Rollback()
		return domain.NewPersistenceError("failed to clear leaderboard entries", err)
	}
	for _, entry := range entries {
		_, err := tx.Exec(
			`INSERT INTO leaderboard_entries (name, score, recorded_at) VALUES (?, ?, ?)`,
			entry.Name, entry.Score, entry.Date)
		if err != nil {
			tx.Rollback()
			return domain.NewPersistenceError("failed to insert leaderboard entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewPersistenceError("failed to commit leaderboard entries", err)
	}
	return nil
}

// Append inserts one entry at the back of the collection.
func (r *SQLLeaderboardRepository) Append(entry domain.LeaderboardEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO leaderboard_entries (name, score, recorded_at) VALUES (?, ?, ?)`,
		entry.Name, entry.Score, entry.Date)
	if err != nil {
		return domain.NewPersistenceError("failed to append leaderboard entry", err)
	}
	return nil
}
