package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fooddonation",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddonation",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fooddonation",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	donationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddonation",
			Subsystem: "donations",
			Name:      "created_total",
			Help:      "Total number of donations listed.",
		},
		[]string{"food_type", "city"},
	)

	ngoRequestsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddonation",
			Subsystem: "ngo_requests",
			Name:      "created_total",
			Help:      "Total number of NGO requests posted.",
		},
		[]string{"city"},
	)

	inventorySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fooddonation",
			Subsystem: "inventory",
			Name:      "claimable_donations",
			Help:      "Number of claimable donations seen by the last inventory read.",
		},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddonation",
			Subsystem: "validation",
			Name:      "failures_total",
			Help:      "Rejected inputs by resource and field.",
		},
		[]string{"resource", "field"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		donationsCreated,
		ngoRequestsCreated,
		inventorySize,
		validationFailures,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
// It must wrap the ServeMux directly so the matched route pattern is visible
// after the mux returns; unmatched requests are labelled "unmatched".
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		method := strings.ToUpper(r.Method)
		path := routeLabel(r.Pattern)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordDonationCreated counts a persisted donation.
func RecordDonationCreated(foodType, city string) {
	donationsCreated.WithLabelValues(foodType, city).Inc()
}

// RecordNgoRequestCreated counts a persisted NGO request.
func RecordNgoRequestCreated(city string) {
	ngoRequestsCreated.WithLabelValues(city).Inc()
}

// SetInventorySize records the size of the latest inventory read.
func SetInventorySize(n int) {
	inventorySize.Set(float64(n))
}

// RecordValidationFailure counts a rejected input.
func RecordValidationFailure(resource, field string) {
	if field == "" {
		field = "body"
	}
	validationFailures.WithLabelValues(resource, field).Inc()
}

// routeLabel strips the method from a ServeMux pattern ("GET /donations" -> "/donations").
func routeLabel(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
