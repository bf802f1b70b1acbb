// Package usersrepobridge exposes account operations over a single HTTP
// endpoint dispatching on an action field.
package usersrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
)

// Config holds configuration for the user bridge. Notifications is needed
// for the welcome notification written on registration.
type Config struct {
	Log           *logger.Logger
	Repository    *usersrepo.Repository
	Notifications *notificationsrepo.Repository
}

// bridge provides HTTP handlers for account operations.
type bridge struct {
	log                    *logger.Logger
	userRepository         *usersrepo.Repository
	notificationRepository *notificationsrepo.Repository
}

func newBridge(cfg Config) *bridge {
	return &bridge{
		log:                    cfg.Log,
		userRepository:         cfg.Repository,
		notificationRepository: cfg.Notifications,
	}
}

// AddHttpRoutes registers the auth endpoint.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.POST("/auth", b.httpAuth)
	group.OPTIONS("/auth", b.httpPreflight)
}
