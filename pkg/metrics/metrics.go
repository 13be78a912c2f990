package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the registry exposed on /api/metrics. A dedicated registry
// keeps the endpoint free of default-registry noise from dependencies.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets for response times ranging from local page
	// renders to a synchronous outbound email call.
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Email Client Metrics (Resend)
	EmailSendDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_client_operation_duration_seconds",
			Help:    "Email client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	EmailSendTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_client_operation_total",
			Help: "Total number of email client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	ContactFormSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldbiro_contact_form_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"},
	)

	RateLimitRejections = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldbiro_rate_limit_rejections_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"limiter"},
	)

	PageViews = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldbiro_page_views_total",
			Help: "Total number of server-rendered page views",
		},
		[]string{"locale", "page"},
	)

	// Infrastructure Metrics
	Goroutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "go_app_goroutines",
			Help: "Number of running goroutines",
		},
	)

	serviceInfo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "service_info",
			Help: "Static service metadata",
		},
		[]string{"service_name"},
	)
)

// Init registers runtime collectors and service metadata.
func Init(serviceName string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serviceInfo.WithLabelValues(serviceName).Set(1)
}

// RecordInfrastructureMetrics starts a background sampler for coarse runtime
// gauges not covered by the standard collectors.
func RecordInfrastructureMetrics() {
	go func() {
		for {
			Goroutines.Set(float64(runtime.NumGoroutine()))
			time.Sleep(15 * time.Second)
		}
	}()
}

// MeasureDuration returns elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
