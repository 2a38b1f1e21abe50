package db

import "todo-web/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
