package health

import "todo-web/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
