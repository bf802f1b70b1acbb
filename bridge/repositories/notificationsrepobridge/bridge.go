// Package notificationsrepobridge exposes derived notifications over HTTP.
package notificationsrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
)

// Config holds configuration for the notification bridge
type Config struct {
	Log        *logger.Logger
	Repository *notificationsrepo.Repository
}

// bridge provides HTTP handlers for notification operations.
type bridge struct {
	notificationRepository *notificationsrepo.Repository
}

func newBridge(notificationRepository *notificationsrepo.Repository) *bridge {
	return &bridge{
		notificationRepository: notificationRepository,
	}
}

// AddHttpRoutes registers all HTTP routes for notifications. Listing derives
// overdue alerts as a side effect, so GET here is not read-only.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/notifications", b.httpListForUser)
	group.PUT("/notifications", b.httpMarkRead)
	group.OPTIONS("/notifications", b.httpPreflight)
}
