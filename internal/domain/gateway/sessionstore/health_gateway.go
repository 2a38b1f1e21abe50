package sessionstore

import "todo-web/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
