package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"disasterguard/internal/domain"
)

// FileLeaderboardRepository persists the leaderboard as a single JSON
// document, read whole and rewritten whole on every save. A process-level
// mutex enforces the single-writer assumption; writes go to a temp file that
// is renamed over the target so a crash mid-write cannot corrupt the store.
type FileLeaderboardRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileLeaderboardRepository creates a store backed by the JSON file at
// path. The file does not have to exist yet.
func NewFileLeaderboardRepository(path string) *FileLeaderboardRepository {
	return &FileLeaderboardRepository{path: path}
}

// Load reads the full persisted collection. An absent file is an empty
// leaderboard, not an error.
func (r *FileLeaderboardRepository) Load() ([]domain.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileLeaderboardRepository) load() ([]domain.LeaderboardEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.LeaderboardEntry{}, nil
		}
		return nil, domain.NewPersistenceError("failed to read leaderboard file", err)
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, domain.NewPersistenceError("failed to decode leaderboard file", err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return entries, nil
}

// Save overwrites the full persisted collection with entries.
func (r *FileLeaderboardRepository) Save(entries []domain.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(entries)
}

func (r *FileLeaderboardRepository) save(entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return domain.NewPersistenceError("failed to encode leaderboard", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, fmt.Sprintf("%s.tmp-*", filepath.Base(r.path)))
	if err != nil {
		return domain.NewPersistenceError("failed to create temp leaderboard file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewPersistenceError("failed to write leaderboard file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return domain.NewPersistenceError("failed to close leaderboard file", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return domain.NewPersistenceError("failed to replace leaderboard file", err)
	}
	return nil
}

// Append loads the collection, pushes the entry to the back and saves the
// whole collection again.
func (r *FileLeaderboardRepository) Append(entry domain.LeaderboardEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(entries, entry))
}
