package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-web/internal/application/middleware"
	"todo-web/internal/application/view"
	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/validation"
	"todo-web/pkg/log"
	"todo-web/pkg/msg"
	"todo-web/pkg/util/numberutils"
)

const xhrHeaderValue = "XMLHttpRequest"

// pages builds view pages and redirects under the configured context path
type pages struct {
	basePath string
}

// page returns a page carrying the flash messages of the session, which are consumed
func (p pages) page(c echo.Context) view.Page {
	errorMessage, successMessage := middleware.CurrentSession(c).PopFlash()
	return view.Page{BasePath: p.basePath, Error: errorMessage, Success: successMessage}
}

// redirect answers GET requests with 302 and form posts with 303
func (p pages) redirect(c echo.Context, parts ...any) error {
	status := http.StatusSeeOther
	if c.Request().Method == http.MethodGet {
		status = http.StatusFound
	}
	return c.Redirect(status, view.Page{BasePath: p.basePath}.URL(parts...))
}

// listNotFound flashes the not found message and sends the browser back to every list
func (p pages) listNotFound(c echo.Context) error {
	middleware.CurrentSession(c).SetError(msg.GetMessage("list.not-found"))
	return p.redirect(c, "lists")
}

// fail maps a use case error that is neither a validation error nor handled by the caller
func (p pages) fail(c echo.Context, err error) error {
	if errors.Is(err, db.ErrListNotFound) {
		return p.listNotFound(c)
	}

	op := "request"
	var storageErr *db.StorageError
	if errors.As(err, &storageErr) {
		op = storageErr.Op
	}
	log.Error(msg.GetMessage("storage.error.failed", op, err),
		zap.String("uri", c.Request().RequestURI),
		zap.Bool("unavailable", errors.Is(err, db.ErrStorageUnavailable)),
		zap.Error(err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, msg.GetMessage("app.internal-error")).SetInternal(err)
}

// validationError returns the user-facing message when err is a validation failure
func validationError(err error) (string, bool) {
	var invalid *validation.Error
	if errors.As(err, &invalid) {
		return invalid.Error(), true
	}
	return "", false
}

func isXHR(c echo.Context) bool {
	return c.Request().Header.Get(echo.HeaderXRequestedWith) == xhrHeaderValue
}

// pathID reads an identifier path parameter. Anything but plain digits is reported as missing.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := numberutils.ToIDWithError(c.Param(name))
	return id, err == nil
}
