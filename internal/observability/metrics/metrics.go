package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                     sync.Once
	metricsRouter            *chi.Mux
	stakingOperationDuration *prometheus.HistogramVec
	transferClientLatency    *prometheus.HistogramVec
	eventPublishErrorCounter prometheus.Counter
	pollerDurationHistogram  *prometheus.HistogramVec
	activePositionsGauge     prometheus.Gauge
	auditDriftCounter        prometheus.Counter
	dbLatency                *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	stakingOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_operation_duration_seconds",
			Help:    "Histogram of staking operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	transferClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transfer_client_latency_seconds",
			Help:    "Histogram of asset transfer service call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	eventPublishErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "event_publish_error_count",
			Help: "The total number of errors when publishing notifications to the event sink",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	activePositionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_positions_count",
			Help: "Number of active staking positions as of the last counter audit",
		},
	)

	auditDriftCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "counter_audit_drift_count",
			Help: "Number of counter drifts detected by the audit",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		stakingOperationDuration,
		transferClientLatency,
		eventPublishErrorCounter,
		pollerDurationHistogram,
		activePositionsGauge,
		auditDriftCounter,
		dbLatency,
	)
}

func RecordStakingOperationDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	stakingOperationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordTransferClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	transferClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordActivePositionsCount(count int64) {
	activePositionsGauge.Set(float64(count))
}

func IncCounterAuditDrift() {
	auditDriftCounter.Inc()
}

func RecordEventPublishError() {
	eventPublishErrorCounter.Inc()
}
