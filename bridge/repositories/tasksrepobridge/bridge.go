// Package tasksrepobridge exposes the task lifecycle over HTTP.
package tasksrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
)

// Config holds configuration for the task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
}

// bridge provides HTTP handlers for task operations.
type bridge struct {
	taskRepository *tasksrepo.Repository
}

func newBridge(taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		taskRepository: taskRepository,
	}
}

// AddHttpRoutes registers all HTTP routes for tasks. The id for update
// travels in the body and for delete in the query string, so there are no
// path parameters here.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList)
	group.POST("/tasks", b.httpCreate)
	group.PUT("/tasks", b.httpUpdate)
	group.DELETE("/tasks", b.httpDelete)
	group.OPTIONS("/tasks", b.httpPreflight)
}
