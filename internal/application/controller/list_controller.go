package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-web/internal/application/middleware"
	"todo-web/internal/application/view"
	"todo-web/internal/domain/model"
	"todo-web/pkg/msg"
)

type ListController struct {
	group   *echo.Group
	resolve GatewayResolver
	pages
}

func NewListController(group *echo.Group, resolve GatewayResolver, basePath string) *ListController {
	return &ListController{group: group, resolve: resolve, pages: pages{basePath: basePath}}
}

// InitListRoutes initializes list routes
func (controller *ListController) InitListRoutes() {
	controller.group.GET("/", controller.Home)
	controller.group.GET("/lists", controller.FindAll)
	controller.group.GET("/lists/new", controller.NewForm)
	controller.group.POST("/lists", controller.Create)
	controller.group.GET("/lists/:id", controller.FindByID)
	controller.group.GET("/lists/:id/edit", controller.EditForm)
	controller.group.POST("/lists/:id", controller.Rename)
	controller.group.POST("/lists/:id/destroy", controller.Delete)
}

func (controller *ListController) Home(c echo.Context) error {
	return controller.redirect(c, "lists")
}

// FindAll renders every list, incomplete ones first
func (controller *ListController) FindAll(c echo.Context) error {
	lists, err := controller.resolve.useCase(c).AllLists()
	if err != nil {
		return controller.fail(c, err)
	}

	page := controller.page(c)
	page.Lists = lists
	return c.Render(http.StatusOK, view.Lists, page)
}

func (controller *ListController) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.NewList, controller.page(c))
}

// Create adds a list. An invalid name re-renders the form with the error.
func (controller *ListController) Create(c echo.Context) error {
	var form model.ListForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if _, err := controller.resolve.useCase(c).CreateList(form.ListName); err != nil {
		message, ok := validationError(err)
		if !ok {
			return controller.fail(c, err)
		}
		page := controller.page(c)
		page.Error = message
		page.ListName = strings.TrimSpace(form.ListName)
		return c.Render(http.StatusUnprocessableEntity, view.NewList, page)
	}

	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("list.created"))
	return controller.redirect(c, "lists")
}

func (controller *ListController) FindByID(c echo.Context) error {
	return controller.renderList(c, view.List)
}

func (controller *ListController) EditForm(c echo.Context) error {
	return controller.renderList(c, view.EditList)
}

// Rename changes the name of a list. An invalid name re-renders the edit form with the error.
func (controller *ListController) Rename(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return controller.listNotFound(c)
	}
	var form model.ListForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	useCase := controller.resolve.useCase(c)
	if err := useCase.RenameList(id, form.ListName); err != nil {
		message, ok := validationError(err)
		if !ok {
			return controller.fail(c, err)
		}
		list, err := useCase.FindList(id)
		if err != nil {
			return controller.fail(c, err)
		}
		page := controller.page(c)
		page.Error = message
		page.List = list
		page.ListName = strings.TrimSpace(form.ListName)
		return c.Render(http.StatusUnprocessableEntity, view.EditList, page)
	}

	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("list.updated"))
	return controller.redirect(c, "lists", id)
}

// Delete removes a list with its todos. XHR callers get the address to navigate to instead of a redirect.
func (controller *ListController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return controller.listNotFound(c)
	}
	if err := controller.resolve.useCase(c).DeleteList(id); err != nil {
		return controller.fail(c, err)
	}

	if isXHR(c) {
		return c.String(http.StatusOK, view.Page{BasePath: controller.basePath}.URL("lists"))
	}
	middleware.CurrentSession(c).SetSuccess(msg.GetMessage("list.deleted"))
	return controller.redirect(c, "lists")
}

func (controller *ListController) renderList(c echo.Context, name string) error {
	id, ok := pathID(c, "id")
	if !ok {
		return controller.listNotFound(c)
	}
	list, err := controller.resolve.useCase(c).FindList(id)
	if err != nil {
		return controller.fail(c, err)
	}

	page := controller.page(c)
	page.List = list
	return c.Render(http.StatusOK, name, page)
}
