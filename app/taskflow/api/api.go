// Package api registers the HTTP surface of the taskflow application.
package api

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/taskflow/taskflow/app/taskflow/config"
	"github.com/taskflow/taskflow/bridge/repositories/notificationsrepobridge"
	"github.com/taskflow/taskflow/bridge/repositories/sessionsrepobridge"
	"github.com/taskflow/taskflow/bridge/repositories/tasksrepobridge"
	"github.com/taskflow/taskflow/bridge/repositories/usersrepobridge"
	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
	"github.com/taskflow/taskflow/infrastructure/postgresdb"
	"github.com/taskflow/taskflow/infrastructure/web"
)

// AddHandlers registers every route the application serves.
func AddHandlers(app *web.WebHandler, cfg config.TaskFlow) {
	root := app.Group("")

	tasksrepobridge.AddHttpRoutes(root, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	sessionsrepobridge.AddHttpRoutes(root, sessionsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Sessions,
	})

	notificationsrepobridge.AddHttpRoutes(root, notificationsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Notifications,
	})

	usersrepobridge.AddHttpRoutes(root, usersrepobridge.Config{
		Log:           cfg.Logger,
		Repository:    cfg.Repositories.Users,
		Notifications: cfg.Repositories.Notifications,
	})

	addProbeRoutes(root, cfg)
}

type probe struct {
	cfg config.TaskFlow
}

func addProbeRoutes(group *web.RouteGroup, cfg config.TaskFlow) {
	p := probe{cfg: cfg}

	group.GET("/liveness", p.httpLiveness)
	group.GET("/readiness", p.httpReadiness)
}

type livenessInfo struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"GOMAXPROCS"`
}

func (p probe) httpLiveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return web.NewJSONResponse(livenessInfo{
		Status:     "up",
		Build:      p.cfg.Build,
		Host:       host,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	})
}

type readinessInfo struct {
	Status string `json:"status"`
}

// httpReadiness checks the database round trip; not ready answers 500 so
// orchestrators hold traffic.
func (p probe) httpReadiness(ctx context.Context, r *http.Request) web.Encoder {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := postgresdb.StatusCheck(ctx, p.cfg.DB); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "database not ready: %s", err)
	}

	return web.NewJSONResponse(readinessInfo{Status: "ready"})
}
