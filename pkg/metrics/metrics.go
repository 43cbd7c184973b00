// Package metrics provides Prometheus instrumentation for the shop.
//
// It pre-defines the standard HTTP metrics plus the shop's domain counters
// (cart size, orders placed, signups). Wire it once when building the
// handler:
//
//	r.Use(metrics.Middleware())
//	r.HandleFunc("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// Built-in HTTP metrics
// ─────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickstationery",
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
			Namespace: "quickstationery",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "quickstationery",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})
)

// ─────────────────────────────────────────────
// Shop domain metrics
// ─────────────────────────────────────────────

var (
	// CartItems mirrors the header badge: the total quantity in the cart
	// after the latest mutation.
	CartItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "quickstationery",
		Subsystem: "shop",
		Name:      "cart_items",
		Help:      "Current number of items in the cart.",
	})

	// OrdersPlaced counts successful checkouts.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "quickstationery",
		Subsystem: "shop",
		Name:      "orders_placed_total",
		Help:      "Total orders placed.",
	})

	// OrderTotal observes the value of each placed order.
	OrderTotal = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quickstationery",
		Subsystem: "shop",
		Name:      "order_total",
		Help:      "Order totals in whole rupees.",
		Buckets:   []float64{50, 100, 250, 500, 1000, 2500},
	})

	// SignupsTotal counts account creations.
	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "quickstationery",
		Subsystem: "shop",
		Name:      "signups_total",
		Help:      "Total accounts created.",
	})

	// LoginsTotal counts successful logins.
	LoginsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "quickstationery",
		Subsystem: "shop",
		Name:      "logins_total",
		Help:      "Total successful logins.",
	})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		CartItems,
		OrdersPlaced,
		OrderTotal,
		SignupsTotal,
		LoginsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler returns the /metrics scrape endpoint.
func Handler() http.HandlerFunc {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP
}

// Middleware instruments every request with the built-in HTTP metrics.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			status := strconv.Itoa(rw.status)
			RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).
				Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
