package sessionstore

import (
	"context"
	"time"

	"todo-web/internal/domain/model"
)

const healthTimeout = 2 * time.Second

// Checker is implemented by every session store
type Checker interface {
	Check(ctx context.Context) (model.HealthStatus, map[string]string)
}

type StoreHealthGateway struct {
	checker Checker
}

var _ HealthGateway = (*StoreHealthGateway)(nil)

func NewStoreHealthGateway(checker Checker) *StoreHealthGateway {
	return &StoreHealthGateway{checker: checker}
}

func (gateway *StoreHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.checker == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "No session store configured"},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	status, details := gateway.checker.Check(ctx)
	if details == nil {
		details = make(map[string]string)
	}
	if _, ok := details["message"]; !ok {
		details["message"] = string(status)
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
