// Package sessionsrepobridge exposes the pomodoro session lifecycle over
// HTTP.
package sessionsrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
)

// Config holds configuration for the session bridge
type Config struct {
	Log        *logger.Logger
	Repository *sessionsrepo.Repository
}

// bridge provides HTTP handlers for session operations.
type bridge struct {
	sessionRepository *sessionsrepo.Repository
}

func newBridge(sessionRepository *sessionsrepo.Repository) *bridge {
	return &bridge{
		sessionRepository: sessionRepository,
	}
}

// AddHttpRoutes registers all HTTP routes for sessions. The task scope for
// list travels in the query string; the session id for update travels in the
// body.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/sessions", b.httpListByTask)
	group.POST("/sessions", b.httpStart)
	group.PUT("/sessions", b.httpUpdate)
	group.OPTIONS("/sessions", b.httpPreflight)
}
