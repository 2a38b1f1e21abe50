package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"todo-web/internal/application/controller"
	"todo-web/internal/application/middleware"
	"todo-web/internal/application/schedule"
	"todo-web/internal/application/view"
	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/gateway/sessionstore"
	"todo-web/internal/domain/usecase/health"
	"todo-web/pkg/log"
	"todo-web/pkg/msg"
	"todo-web/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info(msg.GetMessage("app.start"))

	mode, err := storageMode()
	if err != nil {
		return err
	}

	// Init session store
	store, sweeper, closeStore, err := newSessionStore()
	if err != nil {
		return err
	}
	defer closeStore()

	// Init storage
	var resolve controller.GatewayResolver
	var dbHealthGateway db.HealthDBGateway = db.DisabledHealthDBGateway{}
	if mode == storageModeDatabase {
		conn, dialect, err := openDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		if resource.GetBool("app.db.auto-migrate") {
			if err := migrateSchema(conn, dialect); err != nil {
				return err
			}
		}
		resolve = controller.SharedGateway(db.NewSQLListGateway(conn, dialect))
		dbHealthGateway = db.NewSQLHealthDBGateway(conn, dialect)
	} else {
		resolve = controller.SessionGateway()
	}

	// Init infra
	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	app := e.Group(contextPath)
	pages := e.Group(contextPath, middleware.Session(middleware.SessionConfig{
		Store:      store,
		CookieName: resource.GetStringOrDefault("app.session.cookie-name", "todo_session"),
		TTL:        resource.GetDuration("app.session.ttl"),
	}))

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, sessionstore.NewStoreHealthGateway(store))

	// Init Controller
	healthController := controller.NewHealthController(app, healthUseCase)
	listController := controller.NewListController(pages, resolve, contextPath)
	todoController := controller.NewTodoController(pages, resolve, contextPath)

	// Init Routes
	healthController.InitHealthRoutes()
	listController.InitListRoutes()
	todoController.InitTodoRoutes()

	// Init Schedule
	if sweeper != nil {
		sessionScheduler := schedule.NewSessionScheduler(sweeper)
		if err := sessionScheduler.InitSessionScheduleTasks(resource.GetStringOrDefault("app.session.sweep-cron", "@every 10m")); err != nil {
			return err
		}
		defer sessionScheduler.Stop()
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	serverErr := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		serverErr <- e.Start(":" + port)
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info(msg.GetMessage("app.stop"))
	return nil
}
