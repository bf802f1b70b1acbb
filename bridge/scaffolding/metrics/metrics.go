// Package metrics constructs the metrics the application will track.
package metrics

import (
	"context"
	"expvar"
	"runtime"
)

// The metrics value is constructed once on package load; expvar owns the
// published variables for the lifetime of the process.
var m *metrics

type metrics struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
}

func init() {
	m = &metrics{
		goroutines: expvar.NewInt("goroutines"),
		requests:   expvar.NewInt("requests"),
		errors:     expvar.NewInt("errors"),
		panics:     expvar.NewInt("panics"),
	}
}

// =============================================================================

type ctxKey int

const key ctxKey = 1

// Set stores the metrics data in the context.
func Set(ctx context.Context) context.Context {
	return context.WithValue(ctx, key, m)
}

func getValues(ctx context.Context) *metrics {
	v, ok := ctx.Value(key).(*metrics)
	if !ok {
		return m
	}
	return v
}

// AddGoroutines refreshes the goroutine gauge.
func AddGoroutines(ctx context.Context) int64 {
	v := getValues(ctx)
	g := int64(runtime.NumGoroutine())
	v.goroutines.Set(g)
	return g
}

// AddRequests increments the request counter.
func AddRequests(ctx context.Context) int64 {
	v := getValues(ctx)
	v.requests.Add(1)
	return v.requests.Value()
}

// AddErrors increments the error counter.
func AddErrors(ctx context.Context) int64 {
	v := getValues(ctx)
	v.errors.Add(1)
	return v.errors.Value()
}

// AddPanics increments the panic counter.
func AddPanics(ctx context.Context) int64 {
	v := getValues(ctx)
	v.panics.Add(1)
	return v.panics.Value()
}
