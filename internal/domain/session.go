package domain

import "time"

// Session is one user's ephemeral interaction state: quiz progress, chat
// history, forum posts and the 2D scene position. Sessions are isolated per
// user and are never shared or persisted across restarts.
type Session struct {
	ID        string
	Quiz      *QuizSession
	Chat      []ChatMessage
	Posts     []*Post
	Scenes    map[string]*ScenePosition
	CreatedAt time.Time
}

// ScenePosition is the persisted-per-session part of a 2D scene: where the
// person currently stands.
type ScenePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewSession creates an empty session with a quiz in the NotStarted phase.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Quiz:      NewQuizSession(),
		Scenes:    make(map[string]*ScenePosition),
		CreatedAt: time.Now(),
	}
}

// SessionRepository is the port for the in-memory session store.
type SessionRepository interface {
	// GetOrCreate returns the session for id, creating it when absent. An
	// empty id yields a new session under a freshly generated id.
	GetOrCreate(id string) *Session
	Get(id string) (*Session, bool)
	Delete(id string)
}
