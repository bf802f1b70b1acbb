package postgresdb

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
)

// LoggingQueryTracer logs every query with its arguments. Enabled through
// WithLogQueries, intended for local debugging.
type LoggingQueryTracer struct {
	logger *slog.Logger
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger}
}

// collapseSQL folds a multi-line query into a single trimmed line.
func collapseSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	l.logger.Info("query start",
		slog.String("sql", collapseSQL(data.SQL)),
		slog.Any("args", data.Args),
	)
	return ctx
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		l.logger.Error("query failed", slog.Any("err", data.Err))
		return
	}
	l.logger.Info("query end", slog.String("command", data.CommandTag.String()))
}
