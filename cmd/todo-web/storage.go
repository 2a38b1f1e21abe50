package main

import (
	"database/sql"
	"fmt"

	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/infra/database/gorm"
	"todo-web/internal/infra/database/sqlc"
	"todo-web/internal/infra/session"
	"todo-web/pkg/log"
	"todo-web/pkg/msg"
	"todo-web/pkg/redis"
	"todo-web/pkg/resource"
)

const (
	storageModeDatabase = "database"
	storageModeSession  = "session"

	sessionStoreMemory = "memory"
	sessionStoreRedis  = "redis"
)

func storageMode() (string, error) {
	mode := resource.GetStringOrDefault("app.storage.mode", storageModeDatabase)
	if mode != storageModeDatabase && mode != storageModeSession {
		return "", fmt.Errorf("unsupported storage mode %q", mode)
	}
	return mode, nil
}

// openDatabase connects to the configured database and returns it with its SQL dialect
func openDatabase() (*sql.DB, db.Dialect, error) {
	config := sqlc.ConfigFromProperties()
	dialect := db.Dialect(config.Driver)
	if !dialect.Valid() {
		return nil, "", fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	conn, err := sqlc.Open(config)
	if err != nil {
		return nil, "", err
	}
	return conn, dialect, nil
}

// migrateSchema creates the lists and todos tables when they do not exist yet
func migrateSchema(conn *sql.DB, dialect db.Dialect) error {
	log.Info(msg.GetMessage("db.migrate.start", string(dialect)))

	var err error
	switch dialect {
	case db.DialectPostgres:
		err = gorm.Migrate(conn)
	case db.DialectSQLite:
		err = sqlc.CreateSQLiteSchema(conn)
	default:
		err = fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return err
	}

	log.Info(msg.GetMessage("db.migrate.end"))
	return nil
}

// newSessionStore builds the configured session store. The returned sweeper is nil for stores
// that expire sessions on their own.
func newSessionStore() (session.Store, *session.MemoryStore, func() error, error) {
	ttl := resource.GetDuration("app.session.ttl")

	switch store := resource.GetStringOrDefault("app.session.store", sessionStoreMemory); store {
	case sessionStoreMemory:
		memory := session.NewMemoryStore(ttl)
		return memory, memory, func() error { return nil }, nil
	case sessionStoreRedis:
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
		if err != nil {
			return nil, nil, nil, err
		}
		return session.NewRedisStore(client, ttl), nil, client.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported session store %q", store)
	}
}
