package session

import (
	"context"
	"fmt"
	"time"

	"todo-web/internal/domain/model"
	"todo-web/pkg/redis"
)

const (
	keyPrefix          = "session::"
	redisHealthTimeout = time.Second
)

// jsonClient is the part of the redis client the store needs
type jsonClient interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	HealthCheck(ctx context.Context, timeout time.Duration) (redis.HealthStatus, map[string]string)
}

// RedisStore keeps every session as a JSON document whose key expires after the session ttl
type RedisStore struct {
	client jsonClient
	ttl    time.Duration
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return newRedisStore(client, ttl)
}

func newRedisStore(client jsonClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, now: time.Now}
}

func (store *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	session := &Session{}
	found, err := store.client.GetJSON(ctx, key(id), session)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	session.ID = id
	return session, nil
}

func (store *RedisStore) Save(ctx context.Context, session *Session) error {
	if store.ttl > 0 {
		session.ExpiresAt = store.now().Add(store.ttl)
	}
	if err := store.client.SetJSON(ctx, key(session.ID), session, store.ttl); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (store *RedisStore) Delete(ctx context.Context, id string) error {
	return store.client.Delete(ctx, key(id))
}

func (store *RedisStore) Check(ctx context.Context) (model.HealthStatus, map[string]string) {
	status, details := store.client.HealthCheck(ctx, redisHealthTimeout)
	details["store"] = "redis"
	if status == redis.StatusUp {
		return model.StatusUp, details
	}
	return model.StatusDown, details
}

func key(id string) string {
	return keyPrefix + id
}
