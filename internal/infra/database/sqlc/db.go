package sqlc

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"todo-web/pkg/resource"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the connection settings of the relational store
type Config struct {
	Driver     string
	Host       string
	Port       string
	Username   string
	Password   string
	Database   string
	Schema     string
	SSLMode    string
	SQLitePath string
}

// ConfigFromProperties reads app.db.* from the application properties
func ConfigFromProperties() Config {
	return Config{
		Driver:     resource.GetStringOrDefault("app.db.driver", DriverPostgres),
		Host:       resource.GetString("app.db.host"),
		Port:       resource.GetString("app.db.port"),
		Username:   resource.GetString("app.db.username"),
		Password:   resource.GetString("app.db.password"),
		Database:   resource.GetString("app.db.database"),
		Schema:     resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:    resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		SQLitePath: resource.GetStringOrDefault("app.db.sqlite-path", "todolist.db"),
	}
}

// DataSourceName builds the driver specific DSN
func (config Config) DataSourceName() (string, error) {
	switch config.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			config.Host, config.Port, config.Username, config.Password, config.Database, config.SSLMode,
			config.Schema), nil
	case DriverSQLite:
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", config.SQLitePath), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// Open opens and pings the database
func Open(config Config) (*sql.DB, error) {
	dsn, err := config.DataSourceName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Driver, err)
	}

	// sqlite allows a single writer; one connection avoids SQLITE_BUSY between pooled connections
	if config.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", config.Driver, err)
	}
	return db, nil
}
