package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: todo-web
  server:
    port: ${TODO_TEST_PORT:4567}
    context-path: ${TODO_TEST_CONTEXT:}
  db:
    host: ${TODO_TEST_DB_HOST:localhost}
    auto-migrate: true
    url: "postgres://${TODO_TEST_DB_HOST:localhost}:${TODO_TEST_DB_PORT:5432}/todolist"
  session:
    ttl: 24h
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	return path
}

func TestInit_ResolvesDefaultsAndLiterals(t *testing.T) {
	require.NoError(t, Init(writeProperties(t)))

	assert.Equal(t, "todo-web", GetString("app.name"))
	assert.Equal(t, 4567, GetInt("app.server.port"))
	assert.Equal(t, "", GetString("app.server.context-path"))
	assert.Equal(t, "localhost", GetString("app.db.host"))
	assert.True(t, GetBool("app.db.auto-migrate"))
	assert.Equal(t, "postgres://localhost:5432/todolist", GetString("app.db.url"))
	assert.Equal(t, 24*time.Hour, GetDuration("app.session.ttl"))
}

func TestInit_ResolvesEnvironment(t *testing.T) {
	t.Setenv("TODO_TEST_PORT", "8080")
	t.Setenv("TODO_TEST_DB_HOST", "db.internal")

	require.NoError(t, Init(writeProperties(t)))

	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, "db.internal", GetString("app.db.host"))
	assert.Equal(t, "postgres://db.internal:5432/todolist", GetString("app.db.url"))
}

func TestInit_MissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestGetStringOrDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  test:\n    empty: \"\"\n    full: value\n"), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, "fallback", GetStringOrDefault("app.test.empty", "fallback"))
	assert.Equal(t, "value", GetStringOrDefault("app.test.full", "fallback"))
	assert.Equal(t, "fallback", GetStringOrDefault("app.test.missing", "fallback"))
}
