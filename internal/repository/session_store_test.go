package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	t.Run("creates a session for a new id", func(t *testing.T) {
		store := NewSessionStore()

		session := store.GetOrCreate("session-1")

		require.NotNil(t, session)
		assert.Equal(t, "session-1", session.ID)
	})

	t.Run("returns the same session for the same id", func(t *testing.T) {
		store := NewSessionStore()

		first := store.GetOrCreate("session-1")
		second := store.GetOrCreate("session-1")

		assert.Same(t, first, second)
	})

	t.Run("empty id yields a fresh generated id", func(t *testing.T) {
		store := NewSessionStore()

		first := store.GetOrCreate("")
		second := store.GetOrCreate("")

		require.NotEmpty(t, first.ID)
		require.NotEmpty(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestSessionStore_Get(t *testing.T) {
	store := NewSessionStore()
	created := store.GetOrCreate("session-1")

	session, ok := store.Get("session-1")
	require.True(t, ok)
	assert.Same(t, created, session)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	store.GetOrCreate("session-1")

	store.Delete("session-1")

	_, ok := store.Get("session-1")
	assert.False(t, ok)
}
