package gorm

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-web/internal/domain/entity"
	"todo-web/pkg/log"
)

// zapWriter routes gorm's migration log lines to the application logger
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Migrate creates or updates the lists and todos tables on an open postgres connection
func Migrate(db *sql.DB) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.New(zapWriter{}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("open gorm session: %w", err)
	}

	if err := gormDB.AutoMigrate(&entity.List{}, &entity.Todo{}); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}
	return nil
}
