package health

import (
	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/gateway/sessionstore"
	"todo-web/internal/domain/model"
)

type healthUseCase struct {
	dbGateway      db.HealthDBGateway
	sessionGateway sessionstore.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, sessionGateway sessionstore.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:      dbGateway,
		sessionGateway: sessionGateway,
	}
}

// CheckHealth is DOWN as soon as one component is DOWN. Components that report UNKNOWN are not
// in use and do not affect the overall status.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	sessionHealth := useCase.sessionGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status == model.StatusDown || sessionHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		Database:     dbHealth,
		SessionStore: sessionHealth,
	}
}
