package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-web/internal/application/middleware"
	"todo-web/internal/application/view"
	"todo-web/internal/domain/model"
	"todo-web/pkg/msg"
)

type TodoController struct {
	group   *echo.Group
	resolve GatewayResolver
	pages
}

func NewTodoController(group *echo.Group, resolve GatewayResolver, basePath string) *TodoController {
	return &TodoController{group: group, resolve: resolve, pages: pages{basePath: basePath}}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.group.POST("/lists/:id/todos", controller.Create)
	controller.group.POST("/lists/:id/todos/:todo_id", controller.UpdateStatus)
	controller.group.POST("/lists/:id/todos/:todo_id/destroy", controller.Delete)
	controller.group.POST("/lists/:id/complete_all", controller.CompleteAll)
}

// Create adds a todo to a list. An invalid name re-renders the list with the error.
func (controller *TodoController) Create(c echo.Context) error {
	listID, ok := pathID(c, "id")
	if !ok {
		return controller.listNotFound(c)
	}
	var form model.TodoForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	useCase := controller.resolve.useCase(c)
	if _, err := useCase.CreateTodo(listID, form.Todo); err != nil {
		message, ok := validationError(err)
		if !ok {
			return controller.fail(c, err)
		}
		list, err := useCase.FindList(listID)
		if err != nil {
			return controller.fail(c, err)
		}
		page := controller.page(c)
		page.Error = message
		page.List = list
		return c.Render(http.StatusUnprocessableEntity, view.List, page)
	}

	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("todo.added"))
	return controller.redirect(c, "lists", listID)
}

func (controller *TodoController) UpdateStatus(c echo.Context) error {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return controller.listNotFound(c)
	}
	var form model.TodoStatusForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	if err := controller.resolve.useCase(c).SetTodoCompleted(listID, todoID, form.IsCompleted()); err != nil {
		return controller.fail(c, err)
	}

	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("todo.updated"))
	return controller.redirect(c, "lists", listID)
}

// Delete removes a todo. XHR callers get the address of the list to reload instead of a redirect,
// since the ids of the remaining todos may have changed.
func (controller *TodoController) Delete(c echo.Context) error {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return controller.listNotFound(c)
	}
	if err := controller.resolve.useCase(c).DeleteTodo(listID, todoID); err != nil {
		return controller.fail(c, err)
	}

	if isXHR(c) {
		return c.String(http.StatusOK, view.Page{BasePath: controller.basePath}.URL("lists", listID))
	}
	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("todo.deleted"))
	return controller.redirect(c, "lists", listID)
}

func (controller *TodoController) CompleteAll(c echo.Context) error {
	listID, ok := pathID(c, "id")
	if !ok {
		return controller.listNotFound(c)
	}
	if err := controller.resolve.useCase(c).CompleteAllTodos(listID); err != nil {
		return controller.fail(c, err)
	}

	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("todo.completed-all"))
	return controller.redirect(c, "lists", listID)
}

func todoPath(c echo.Context) (listID int64, todoID int64, ok bool) {
	if listID, ok = pathID(c, "id"); !ok {
		return 0, 0, false
	}
	if todoID, ok = pathID(c, "todo_id"); !ok {
		return 0, 0, false
	}
	return listID, todoID, true
}
