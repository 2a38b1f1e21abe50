package sqlc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceName(t *testing.T) {
	postgres := Config{
		Driver: DriverPostgres, Host: "db", Port: "5432", Username: "todo", Password: "secret",
		Database: "todolist", Schema: "public", SSLMode: "disable",
	}
	dsn, err := postgres.DataSourceName()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=todo password=secret dbname=todolist sslmode=disable search_path=public", dsn)

	dsn, err = Config{Driver: DriverSQLite, SQLitePath: "/tmp/todo.db"}.DataSourceName()
	require.NoError(t, err)
	assert.Equal(t, "file:/tmp/todo.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn)

	_, err = Config{Driver: "oracle"}.DataSourceName()
	assert.Error(t, err)
}

func TestOpen_SQLiteCreatesSchemaIdempotently(t *testing.T) {
	db, err := Open(Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "todo.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, CreateSQLiteSchema(db))
	require.NoError(t, CreateSQLiteSchema(db))

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('lists', 'todos')`).Scan(&count))
	assert.Equal(t, 2, count)
}
