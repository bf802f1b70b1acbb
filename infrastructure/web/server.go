package web

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/taskflow/taskflow/sdk/environment"
)

// WebServer wraps http.Server with additional configuration
type WebServer struct {
	*http.Server
	Config ServerConfig
}

// ServerConfig holds web server configuration (exportable)
type ServerConfig struct {
	Port            string        `env:"PORT" default:":8080"`
	EnableDebug     bool          `env:"ENABLE_DEBUG" default:"false"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"20s"`
}

// internal serveroptions struct for runtime configuration
type serveroptions struct {
	handler  http.Handler
	errorLog *log.Logger
	config   ServerConfig
}

// ServerOption takes config serveroption and returns formatted config
type ServerOption func(*serveroptions)

// WithHandler sets the HTTP handler
func WithHandler(handler http.Handler) ServerOption {
	return func(o *serveroptions) {
		o.handler = handler
	}
}

// WithErrorLog sets the error logger
func WithErrorLog(errorLog *log.Logger) ServerOption {
	return func(o *serveroptions) {
		o.errorLog = errorLog
	}
}

// WithPort sets the server port
func WithPort(port string) ServerOption {
	return func(o *serveroptions) {
		o.config.Port = port
	}
}

// WithTimeouts sets all timeout values
func WithTimeouts(read, write, idle, shutdown time.Duration) ServerOption {
	return func(o *serveroptions) {
		o.config.ReadTimeout = read
		o.config.WriteTimeout = write
		o.config.IdleTimeout = idle
		o.config.ShutdownTimeout = shutdown
	}
}

// NewServerDefault creates a new WebServer with default settings
func NewServerDefault(opts ...ServerOption) *WebServer {
	config := ServerConfig{
		Port:            ":8080",
		EnableDebug:     false,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 20 * time.Second,
	}
	return newWebServer(config, opts...)
}

// NewServerFromEnv creates a new WebServer from environment variables
func NewServerFromEnv(prefix string, opts ...ServerOption) (*WebServer, error) {
	var config ServerConfig
	if err := environment.ParseEnvTags(prefix, &config); err != nil {
		return nil, fmt.Errorf("parsing webserver config: %w", err)
	}

	return newWebServer(config, opts...), nil
}

// newWebServer creates a new WebServer with given config and applies serveroptions
func newWebServer(cfg ServerConfig, opts ...ServerOption) *WebServer {
	internalOpts := &serveroptions{
		config: cfg,
	}

	for _, opt := range opts {
		opt(internalOpts)
	}

	server := &http.Server{
		Addr:         internalOpts.config.Port,
		Handler:      internalOpts.handler,
		ReadTimeout:  internalOpts.config.ReadTimeout,
		WriteTimeout: internalOpts.config.WriteTimeout,
		IdleTimeout:  internalOpts.config.IdleTimeout,
		ErrorLog:     internalOpts.errorLog,
	}

	return &WebServer{
		Server: server,
		Config: internalOpts.config,
	}
}
