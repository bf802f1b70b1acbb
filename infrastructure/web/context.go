package web

import (
	"context"
	"net/http"
)

type ctxKey int

const (
	writerKey ctxKey = iota + 1
)

func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

// GetWriter returns the underlying response writer for middleware that needs
// to set headers directly.
func GetWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(writerKey).(http.ResponseWriter)
	if !ok {
		return nil
	}
	return w
}
