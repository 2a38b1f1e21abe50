package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-web/internal/domain/model"
)

type staticGateway model.HealthStatus

func (g staticGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(g), Details: map[string]string{}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		db      model.HealthStatus
		session model.HealthStatus
		want    model.HealthStatus
	}{
		{name: "all up", db: model.StatusUp, session: model.StatusUp, want: model.StatusUp},
		{name: "session mode has no database", db: model.StatusUnknown, session: model.StatusUp, want: model.StatusUp},
		{name: "database down", db: model.StatusDown, session: model.StatusUp, want: model.StatusDown},
		{name: "session store down", db: model.StatusUp, session: model.StatusDown, want: model.StatusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := NewHealthUseCase(staticGateway(tt.db), staticGateway(tt.session)).CheckHealth()

			assert.Equal(t, tt.want, response.Status)
			assert.Equal(t, tt.db, response.Database.Status)
			assert.Equal(t, tt.session, response.SessionStore.Status)
		})
	}
}
