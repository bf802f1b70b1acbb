package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
)

// Logger writes information about the request to the logs, tagged with the
// trace id the handler placed in the context.
func Logger(log *logger.Logger, tel web.Telemetry) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}
			traceID := tel.GetTraceID(ctx)

			log.InfoContext(ctx, "request started", "trace_id", traceID,
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed", "trace_id", traceID,
				"method", r.Method, "path", path,
				"remoteaddr", r.RemoteAddr, "since", time.Since(now).String())

			return resp
		}
	}
}
