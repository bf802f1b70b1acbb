package mid

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskflow/taskflow/infrastructure/web"
)

// CORSConfig holds CORS configuration options
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns a default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Authorization"},
		Credentials: true,
		MaxAge:      "86400",
	}
}

// CORS creates CORS middleware with the given origins
func CORS(origins ...string) web.Middleware {
	config := DefaultCORSConfig()
	config.Origins = origins
	return CORSWithConfig(config)
}

// PublicCORS creates CORS middleware that permits any origin. The API is
// deliberately open to all origins.
func PublicCORS() web.Middleware {
	return CORS("*")
}

// CORSWithConfig creates CORS middleware with full configuration
func CORSWithConfig(config CORSConfig) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			w := web.GetWriter(ctx)
			if w == nil {
				return web.NewError("internal server error: response writer not available")
			}

			reqOrigin := r.Header.Get("Origin")
			for _, origin := range config.Origins {
				if origin == "*" || origin == reqOrigin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}

			if config.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if len(config.Methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.Methods, ", "))
			}
			if len(config.Headers) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.Headers, ", "))
			}
			if config.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", config.MaxAge)
			}

			if r.Method == http.MethodOptions {
				return web.NewNoResponse()
			}

			return next(ctx, r)
		}
	}
}
