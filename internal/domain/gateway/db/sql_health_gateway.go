package db

import (
	"context"
	"database/sql"
	"time"

	"todo-web/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type SQLHealthDBGateway struct {
	DB      *sql.DB
	Dialect Dialect
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB, dialect Dialect) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db, Dialect: dialect}
}

func (gateway *SQLHealthDBGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"dialect": string(gateway.Dialect),
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"dialect": string(gateway.Dialect),
			"message": string(model.StatusUp),
		},
	}
}

// DisabledHealthDBGateway reports the database as unknown when lists live in the session
type DisabledHealthDBGateway struct{}

var _ HealthDBGateway = DisabledHealthDBGateway{}

func (DisabledHealthDBGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "storage mode does not use a database"},
	}
}
