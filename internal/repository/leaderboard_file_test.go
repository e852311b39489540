package repository

import (
	"os"
	"path/filepath"
	"testing"

	"disasterguard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLeaderboardRepository_Load(t *testing.T) {
	t.Run("absent file is an empty leaderboard", func(t *testing.T) {
		repo := NewFileLeaderboardRepository(filepath.Join(t.TempDir(), "leaderboard.json"))

		entries, err := repo.Load()

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("reads back what was saved", func(t *testing.T) {
		repo := NewFileLeaderboardRepository(filepath.Join(t.TempDir(), "leaderboard.json"))
		saved := []domain.LeaderboardEntry{
			{Name: "Mia", Score: 5, Date: "2026-08-28 10:00"},
			{Name: "Leo", Score: 3, Date: "2026-08-28 10:05"},
		}
		require.NoError(t, repo.Save(saved))

		entries, err := repo.Load()

		require.NoError(t, err)
		assert.Equal(t, saved, entries)
	})

	t.Run("corrupt file is a persistence error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leaderboard.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		repo := NewFileLeaderboardRepository(path)

		_, err := repo.Load()

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodePersistence, domainErr.Code)
	})

	t.Run("file holding null is an empty leaderboard", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leaderboard.json")
		require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))
		repo := NewFileLeaderboardRepository(path)

		entries, err := repo.Load()

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestFileLeaderboardRepository_Save(t *testing.T) {
	t.Run("overwrites the previous collection", func(t *testing.T) {
		repo := NewFileLeaderboardRepository(filepath.Join(t.TempDir(), "leaderboard.json"))
		require.NoError(t, repo.Save([]domain.LeaderboardEntry{{Name: "Mia", Score: 5}}))

		require.NoError(t, repo.Save([]domain.LeaderboardEntry{{Name: "Leo", Score: 2}}))

		entries, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Leo", entries[0].Name)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewFileLeaderboardRepository(filepath.Join(dir, "leaderboard.json"))

		require.NoError(t, repo.Save([]domain.LeaderboardEntry{{Name: "Mia", Score: 5}}))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "leaderboard.json", files[0].Name())
	})
}

func TestFileLeaderboardRepository_Append(t *testing.T) {
	t.Run("appends to the back", func(t *testing.T) {
		repo := NewFileLeaderboardRepository(filepath.Join(t.TempDir(), "leaderboard.json"))

		require.NoError(t, repo.Append(domain.LeaderboardEntry{Name: "Mia", Score: 5, Date: "2026-08-28 10:00"}))
		require.NoError(t, repo.Append(domain.LeaderboardEntry{Name: "Leo", Score: 3, Date: "2026-08-28 10:05"}))

		entries, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Mia", entries[0].Name)
		assert.Equal(t, "Leo", entries[1].Name)
	})

	t.Run("rejects an invalid entry before touching the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leaderboard.json")
		repo := NewFileLeaderboardRepository(path)

		err := repo.Append(domain.LeaderboardEntry{Name: "", Score: 3})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
