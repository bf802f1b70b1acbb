// Package web contains a small web framework extension over net/http.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Encoder defines behavior that can encode a data model and provide
// the content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HandlerFunc represents a function that handles a http request and returns
// something to encode.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// Middleware wraps a HandlerFunc.
type Middleware func(HandlerFunc) HandlerFunc

// Telemetry represents a provider that manages trace identifiers.
type Telemetry interface {
	SetTraceID(ctx context.Context) context.Context
	GetTraceID(ctx context.Context) string
}

// WebHandler is the entrypoint into the application. It configures the
// context object for each of the http handlers and owns the route mux.
type WebHandler struct {
	mux       *http.ServeMux
	log       *slog.Logger
	telemetry Telemetry

	defaultHeaders   map[string]string
	globalMiddleware []Middleware
}

type HandlerOption func(*handlerOptions)

// internal options struct for additional runtime configuration
type handlerOptions struct {
	log              *slog.Logger
	telemetry        Telemetry
	defaultHeaders   map[string]string
	globalMiddleware []Middleware
}

// WithLogging sets the logger
func WithLogging(log *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.log = log
	}
}

// WithTelemetry sets the telemetry provider
func WithTelemetry(tel Telemetry) HandlerOption {
	return func(o *handlerOptions) {
		o.telemetry = tel
	}
}

// WithDefaultHeaders sets default headers
func WithDefaultHeaders(headers map[string]string) HandlerOption {
	return func(o *handlerOptions) {
		if o.defaultHeaders == nil {
			o.defaultHeaders = make(map[string]string)
		}
		for k, v := range headers {
			o.defaultHeaders[k] = v
		}
	}
}

// WithGlobalMiddleware adds global middleware, applied outermost-first in
// the order given.
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(o *handlerOptions) {
		o.globalMiddleware = append(o.globalMiddleware, middleware...)
	}
}

// NewWebHandler creates a new WebHandler and applies options.
func NewWebHandler(opts ...HandlerOption) *WebHandler {
	internalOpts := &handlerOptions{
		defaultHeaders:   make(map[string]string),
		globalMiddleware: make([]Middleware, 0),
	}

	for _, opt := range opts {
		opt(internalOpts)
	}

	return &WebHandler{
		mux:              http.NewServeMux(),
		log:              internalOpts.log,
		telemetry:        internalOpts.telemetry,
		defaultHeaders:   internalOpts.defaultHeaders,
		globalMiddleware: internalOpts.globalMiddleware,
	}
}

// Handle registers a handler for the method and path, wrapped in the global
// middleware chain plus any route specific middleware.
func (wh *WebHandler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	finalHandler := wh.buildHandlerChain(handler, middleware...)

	httpHandler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if wh.telemetry != nil {
			ctx = wh.telemetry.SetTraceID(ctx)
		}
		ctx = setWriter(ctx, w)

		for k, v := range wh.defaultHeaders {
			w.Header().Set(k, v)
		}

		resp := finalHandler(ctx, r)

		if err := Respond(ctx, w, resp); err != nil && wh.log != nil {
			wh.log.ErrorContext(ctx, "respond error", "error", err)
		}
	}

	pattern := fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	wh.mux.HandleFunc(pattern, httpHandler)
}

// HandleRaw registers a raw http.Handler. Global middleware is not applied.
func (wh *WebHandler) HandleRaw(pattern string, handler http.Handler) {
	wh.mux.Handle(pattern, handler)
}

// ServeHTTP implements the http.Handler interface.
func (wh *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wh.mux.ServeHTTP(w, r)
}

func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	allMiddleware := append(append([]Middleware{}, wh.globalMiddleware...), middleware...)

	final := handler
	for i := len(allMiddleware) - 1; i >= 0; i-- {
		final = allMiddleware[i](final)
	}

	return final
}
