package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/model"
)

// Session is the state kept for one browser between requests
type Session struct {
	ID        string          `json:"id"`
	Lists     db.SessionLists `json:"lists"`
	Error     string          `json:"error,omitempty"`
	Success   string          `json:"success,omitempty"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Store persists sessions by id. Load returns nil and no error when the session does not exist.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
	Check(ctx context.Context) (model.HealthStatus, map[string]string)
}

func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// ValidID reports whether id has the shape of an id issued by New
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Session) SetError(message string) {
	s.Error = message
}

func (s *Session) SetSuccess(message string) {
	s.Success = message
}

// PopFlash returns the pending flash messages and clears them
func (s *Session) PopFlash() (errorMessage string, successMessage string) {
	errorMessage, successMessage = s.Error, s.Success
	s.Error, s.Success = "", ""
	return errorMessage, successMessage
}

func (s *Session) Clone() *Session {
	clone := *s
	clone.Lists = s.Lists.Clone()
	return &clone
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
