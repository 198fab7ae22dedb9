// Package metrics constructs the metrics the application will track.
package metrics

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/jcpaschoal/vertical-suite/app/sdk/metrics"

// This holds the single instance of the metrics value needed for collecting
// metrics. The OTel instruments are safe for concurrent use.
var m struct {
	once sync.Once

	requests metric.Int64Counter
	errors   metric.Int64Counter
	panics   metric.Int64Counter

	nRequests atomic.Int64
	nErrors   atomic.Int64
	nPanics   atomic.Int64
}

// instruments binds the counters against the global meter provider. It is
// called lazily so main can install the provider first.
func instruments() {
	m.once.Do(func() {
		meter := otel.Meter(meterName)

		m.requests, _ = meter.Int64Counter("http.server.requests",
			metric.WithDescription("Number of handled requests."))
		m.errors, _ = meter.Int64Counter("http.server.errors",
			metric.WithDescription("Number of requests that ended in an error."))
		m.panics, _ = meter.Int64Counter("http.server.panics",
			metric.WithDescription("Number of recovered panics."))

		meter.Int64ObservableGauge("process.goroutines",
			metric.WithDescription("Number of live goroutines."),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(runtime.NumGoroutine()))
				return nil
			}),
		)
	})
}

// AddRequests increments the request metric by 1 and returns the running
// total for this process.
func AddRequests(ctx context.Context) int64 {
	instruments()
	m.requests.Add(ctx, 1)
	return m.nRequests.Add(1)
}

// AddErrors increments the errors metric by 1.
func AddErrors(ctx context.Context) int64 {
	instruments()
	m.errors.Add(ctx, 1)
	return m.nErrors.Add(1)
}

// AddPanics increments the panics metric by 1.
func AddPanics(ctx context.Context) int64 {
	instruments()
	m.panics.Add(ctx, 1)
	return m.nPanics.Add(1)
}
