package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-web/internal/infra/session"
	"todo-web/pkg/log"
	"todo-web/pkg/msg"
)

const sessionContextKey = "todo-web.session"

type SessionConfig struct {
	Store      session.Store
	CookieName string
	TTL        time.Duration
}

// Session loads the browser session before the handler runs and writes it back, together
// with the session cookie, right before the response headers are sent.
func Session(config SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			current := loadSession(c, config)
			c.Set(sessionContextKey, current)

			c.Response().Before(func() {
				if err := config.Store.Save(ctx, current); err != nil {
					log.Error(msg.GetMessage("session.error.save", current.ID, err), zap.Error(err))
				}
				cookie := &http.Cookie{
					Name:     config.CookieName,
					Value:    current.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				}
				if config.TTL > 0 {
					cookie.MaxAge = int(config.TTL.Seconds())
				}
				c.SetCookie(cookie)
			})

			return next(c)
		}
	}
}

// CurrentSession returns the session attached by the Session middleware
func CurrentSession(c echo.Context) *session.Session {
	if current, ok := c.Get(sessionContextKey).(*session.Session); ok {
		return current
	}
	current := session.New()
	c.Set(sessionContextKey, current)
	return current
}

func loadSession(c echo.Context, config SessionConfig) *session.Session {
	cookie, err := c.Cookie(config.CookieName)
	if err != nil || !session.ValidID(cookie.Value) {
		return session.New()
	}

	ctx := c.Request().Context()
	loaded, err := config.Store.Load(ctx, cookie.Value)
	if err != nil {
		log.Error(msg.GetMessage("session.error.load", cookie.Value, err), zap.Error(err))
		// the replacement session gets a new id, so the unreadable one is dropped
		if err := config.Store.Delete(ctx, cookie.Value); err != nil {
			log.Error(msg.GetMessage("session.error.delete", cookie.Value, err), zap.Error(err))
		}
		return session.New()
	}
	if loaded == nil {
		return session.New()
	}
	return loaded
}
