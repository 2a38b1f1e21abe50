package controller

import (
	"github.com/labstack/echo/v4"

	"todo-web/internal/application/middleware"
	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/usecase/todolist"
)

// GatewayResolver returns the list storage serving the request
type GatewayResolver func(c echo.Context) db.ListGateway

// SharedGateway serves every request from the same gateway, used for the database storage mode
func SharedGateway(gateway db.ListGateway) GatewayResolver {
	return func(echo.Context) db.ListGateway {
		return gateway
	}
}

// SessionGateway serves every request from the lists kept in its own session
func SessionGateway() GatewayResolver {
	return func(c echo.Context) db.ListGateway {
		return db.NewSessionListGateway(&middleware.CurrentSession(c).Lists)
	}
}

func (resolve GatewayResolver) useCase(c echo.Context) todolist.UseCase {
	return todolist.NewTodoListUseCase(resolve(c))
}
