package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClassifyRPCOutcome(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "ok", want: RPCOutcomeOK},
		{name: "raise exception", err: fmt.Errorf("rpc: %w", &pgconn.PgError{Code: "P0001"}), want: RPCOutcomeRejected},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, want: RPCOutcomeError},
		{name: "other", err: errors.New("boom"), want: RPCOutcomeError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyRPCOutcome(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AuditEnqueued(3)
	m.AuditWritten(2)
	m.AuditDropped(AuditDropQueueFull)
	m.AuditDropped(AuditDropQueueFull)
	m.ObserveHTTP("GET", "/v1/budgets", "200", 10*time.Millisecond)
	m.ObserveRPC("cancel_service_order", &pgconn.PgError{Code: "P0001"}, time.Millisecond)

	if got := testutil.ToFloat64(m.auditDropped.WithLabelValues(AuditDropQueueFull)); got != 2 {
		t.Fatalf("expected 2 dropped, got %v", got)
	}
	if got := testutil.ToFloat64(m.auditQueue); got != 2 {
		t.Fatalf("expected queue depth 2, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/budgets", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
	if got := testutil.ToFloat64(m.rpcCalls.WithLabelValues("cancel_service_order", RPCOutcomeRejected)); got != 1 {
		t.Fatalf("expected 1 rejected rpc, got %v", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.AuditRetry()
	m.ObserveHTTP("GET", "/", "200", 0)
}
