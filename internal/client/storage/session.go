package storage

import (
	"context"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the authenticated session
// on the client. This is the lowest storage layer - it works with raw data
// and performs no validation of its own.
type SessionStorage interface {
	// SaveSession stores the session snapshot, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session snapshot.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// SessionData представляет сохраненный снимок сессии.
// Снимок используется только для оптимистичного отображения до первого
// обновления профиля с сервера; после этого источником истины является
// сервер, а снимок лишь догоняет его через SaveSession.
type SessionData struct {
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	AccessToken string  `json:"access_token"`
	Balance     float64 `json:"balance"`
	SavedAt     int64   `json:"saved_at"` // unix seconds
}
