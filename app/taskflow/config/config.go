// Package config holds the site wide wiring for the taskflow application.
package config

import (
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/infrastructure/postgresdb"
	"github.com/taskflow/taskflow/sdk/logger"
	"github.com/taskflow/taskflow/sdk/telemetry"
)

// Repositories holds the repositories this instance of taskflow serves.
type Repositories struct {
	Tasks         *tasksrepo.Repository
	Sessions      *sessionsrepo.Repository
	Notifications *notificationsrepo.Repository
	Users         *usersrepo.Repository
}

// TaskFlow is the overall configuration for the taskflow application.
type TaskFlow struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry

	DB *postgresdb.Pool
}
