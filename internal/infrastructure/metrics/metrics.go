// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mecanica"

// Audit drop reasons.
const (
	AuditDropQueueFull = "queue_full"
	AuditDropExhausted = "retries_exhausted"
	AuditDropClosed    = "closed"
	AuditDropInvalid   = "invalid_user_id"
)

// RPC outcomes.
const (
	RPCOutcomeOK       = "ok"
	RPCOutcomeRejected = "rejected"
	RPCOutcomeError    = "error"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	auditEnqueued prometheus.Counter
	auditWritten  prometheus.Counter
	auditRetries  prometheus.Counter
	auditDropped  *prometheus.CounterVec
	auditQueue    prometheus.Gauge

	rpcCalls    *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
}

var (
	defaultOnce sync.Once
	defaultM    *Metrics
)

// Default returns the process-wide collectors registered on the default registerer.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultM = New(prometheus.DefaultRegisterer)
	})
	return defaultM
}

// New registers a fresh set of collectors on reg. Tests pass a prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		auditEnqueued: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "enqueued_total",
			Help:      "Audit entries accepted into the queue.",
		}),
		auditWritten: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "written_total",
			Help:      "Audit entries persisted.",
		}),
		auditRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "retries_total",
			Help:      "Audit write attempts after a failure.",
		}),
		auditDropped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "dropped_total",
			Help:      "Audit entries dropped, by reason.",
		}, []string{"reason"}),
		auditQueue: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "queue_depth",
			Help:      "Audit entries waiting to be written.",
		}),
		rpcCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "rpc_calls_total",
			Help:      "Backend RPC calls by function and outcome.",
		}, []string{"function", "outcome"}),
		rpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "rpc_duration_seconds",
			Help:      "Backend RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"function"}),
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AuditEnqueued(depth int) {
	if m == nil {
		return
	}
	m.auditEnqueued.Inc()
	m.auditQueue.Set(float64(depth))
}

func (m *Metrics) AuditWritten(depth int) {
	if m == nil {
		return
	}
	m.auditWritten.Inc()
	m.auditQueue.Set(float64(depth))
}

func (m *Metrics) AuditRetry() {
	if m == nil {
		return
	}
	m.auditRetries.Inc()
}

func (m *Metrics) AuditDropped(reason string) {
	if m == nil {
		return
	}
	m.auditDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRPC(function string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcCalls.WithLabelValues(function, ClassifyRPCOutcome(err)).Inc()
	m.rpcDuration.WithLabelValues(function).Observe(elapsed.Seconds())
}

// ClassifyRPCOutcome separates backend rule rejections (raise exception, P0001)
// from transport or database failures.
func ClassifyRPCOutcome(err error) string {
	if err == nil {
		return RPCOutcomeOK
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "P0001" {
		return RPCOutcomeRejected
	}
	return RPCOutcomeError
}
