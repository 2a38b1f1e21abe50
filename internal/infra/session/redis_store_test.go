package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/model"
	"todo-web/pkg/redis"
)

type fakeJSONClient struct {
	values  map[string][]byte
	ttls    map[string]time.Duration
	err     error
	healthy bool
}

func newFakeJSONClient() *fakeJSONClient {
	return &fakeJSONClient{values: make(map[string][]byte), ttls: make(map[string]time.Duration), healthy: true}
}

func (f *fakeJSONClient) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	value, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(value, dest)
}

func (f *fakeJSONClient) SetJSON(_ context.Context, key string, value any, expiration time.Duration) error {
	if f.err != nil {
		return f.err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = data
	f.ttls[key] = expiration
	return nil
}

func (f *fakeJSONClient) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeJSONClient) HealthCheck(_ context.Context, _ time.Duration) (redis.HealthStatus, map[string]string) {
	if f.healthy {
		return redis.StatusUp, map[string]string{"version": "7.2.4"}
	}
	return redis.StatusDown, map[string]string{"error": "connection refused"}
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	client := newFakeJSONClient()
	store := newRedisStore(client, 24*time.Hour)

	session := New()
	session.Lists = db.SessionLists{Lists: []db.SessionList{{
		Name:  "Groceries",
		Todos: []db.SessionTodo{{Name: "Milk", Completed: true}},
	}}}
	session.SetSuccess("The list has been created.")
	require.NoError(t, store.Save(ctx, session))

	assert.Contains(t, client.values, "session::"+session.ID)
	assert.Equal(t, 24*time.Hour, client.ttls["session::"+session.ID])

	loaded, err := store.Load(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, session.Lists, loaded.Lists)
	assert.Equal(t, "The list has been created.", loaded.Success)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store := newRedisStore(newFakeJSONClient(), time.Hour)

	session, err := store.Load(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisStore_ClientErrorsAreWrapped(t *testing.T) {
	client := newFakeJSONClient()
	client.err = errors.New("connection refused")
	store := newRedisStore(client, time.Hour)

	_, err := store.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, client.err)
	assert.ErrorContains(t, err, "load session abc")

	err = store.Save(context.Background(), &Session{ID: "abc"})
	assert.ErrorIs(t, err, client.err)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	client := newFakeJSONClient()
	store := newRedisStore(client, time.Hour)
	session := New()
	require.NoError(t, store.Save(ctx, session))

	require.NoError(t, store.Delete(ctx, session.ID))

	assert.Empty(t, client.values)
}

func TestRedisStore_Check(t *testing.T) {
	client := newFakeJSONClient()
	store := newRedisStore(client, time.Hour)

	status, details := store.Check(context.Background())
	assert.Equal(t, model.StatusUp, status)
	assert.Equal(t, "redis", details["store"])

	client.healthy = false
	status, details = store.Check(context.Background())
	assert.Equal(t, model.StatusDown, status)
	assert.Equal(t, "connection refused", details["error"])
}
