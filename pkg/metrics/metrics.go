// Package metrics provides Prometheus instrumentation.
//
// Wire it up once in the HTTP kernel:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foodcourt",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodcourt",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "foodcourt",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// OrdersPlaced counts placed orders by payment method.
	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodcourt",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total orders placed.",
		},
		[]string{"method"}, // "card" | "cod"
	)

	// PaymentsVerified counts payment verification outcomes.
	PaymentsVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodcourt",
			Subsystem: "orders",
			Name:      "payments_verified_total",
			Help:      "Total payment verification callbacks.",
		},
		[]string{"result"}, // "paid" | "cancelled"
	)

	// CartMutations counts cart add/remove operations.
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodcourt",
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Total cart add/remove operations.",
		},
		[]string{"op"}, // "add" | "remove"
	)
)

// DefaultRegistry is the Prometheus registry used by the application.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersPlaced,
		PaymentsVerified,
		CartMutations,
	)
}

// MustRegister adds your own prometheus.Collector to the registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // raw path; the API surface is small and fixed

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page. Mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
