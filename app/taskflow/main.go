package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/taskflow/taskflow/app/taskflow/api"
	"github.com/taskflow/taskflow/app/taskflow/config"
	"github.com/taskflow/taskflow/bridge/scaffolding/mid"
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo/stores/notificationspgxstore"
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo/stores/sessionspgxstore"
	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
	"github.com/taskflow/taskflow/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/taskflow/taskflow/infrastructure/postgresdb"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
	"github.com/taskflow/taskflow/sdk/telemetry"
)

var build = "develop"
var appName = "TASKFLOW"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuring logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	pg, err := postgresdb.NewFromEnv(appName)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	notifications := notificationsrepo.NewRepository(log, notificationspgxstore.NewStore(log, pg))
	siteCfg := config.TaskFlow{
		Build:     build,
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Repositories: config.Repositories{
			Tasks:         tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg)),
			Sessions:      sessionsrepo.NewRepository(log, sessionspgxstore.NewStore(log, pg)),
			Notifications: notifications,
			Users:         usersrepo.NewRepository(log, userspgxstore.NewStore(log, pg)),
		},
		DB: pg,
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(webHandler(siteCfg)),
		web.WithErrorLog(logger.NewStdLogger(log, logger.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.TaskFlow) http.Handler {
	app := web.NewWebHandler(
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.PublicCORS(),
			mid.Logger(cfg.Logger, cfg.Telemetry),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	api.AddHandlers(app, cfg)

	return app
}
