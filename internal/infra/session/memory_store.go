package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"todo-web/internal/domain/model"
)

// MemoryStore keeps sessions in process memory. It hands out copies, so a request never
// shares its session value with another one.
type MemoryStore struct {
	mutex    sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (store *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	session, ok := store.sessions[id]
	if !ok {
		return nil, nil
	}
	if session.Expired(store.now()) {
		delete(store.sessions, id)
		return nil, nil
	}
	return session.Clone(), nil
}

func (store *MemoryStore) Save(_ context.Context, session *Session) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if store.ttl > 0 {
		session.ExpiresAt = store.now().Add(store.ttl)
	}
	store.sessions[session.ID] = session.Clone()
	return nil
}

func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	delete(store.sessions, id)
	return nil
}

// Sweep drops every expired session and returns how many were removed
func (store *MemoryStore) Sweep() int {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	now := store.now()
	removed := 0
	for id, session := range store.sessions {
		if session.Expired(now) {
			delete(store.sessions, id)
			removed++
		}
	}
	return removed
}

func (store *MemoryStore) Len() int {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return len(store.sessions)
}

func (store *MemoryStore) Check(_ context.Context) (model.HealthStatus, map[string]string) {
	return model.StatusUp, map[string]string{
		"store":    "memory",
		"sessions": strconv.Itoa(store.Len()),
	}
}
