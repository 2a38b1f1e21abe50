package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-web/internal/domain/model"
	"todo-web/internal/domain/usecase/health"
)

type HealthController struct {
	group   *echo.Group
	useCase health.UseCase
}

func NewHealthController(group *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{group: group, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.group.GET("/health", controller.CheckHealth())
}

// CheckHealth answers 200 while the application is up and 503 once a component is down
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth()

		status := http.StatusOK
		if healthResponse.Status == model.StatusDown {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, healthResponse)
	}
}
