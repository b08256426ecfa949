package ledger

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type instrumentedClient struct {
	next     Client
	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
	confirm  prometheus.Histogram
}

// Instrument wraps a client with prometheus counters per contract/method and
// a confirmation-latency histogram for writes.
func Instrument(next Client, reg prometheus.Registerer) Client {
	c := &instrumentedClient{
		next: next,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tradehub",
			Subsystem: "ledger",
			Name:      "calls_total",
			Help:      "Ledger round trips by contract, method and kind.",
		}, []string{"contract", "method", "kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tradehub",
			Subsystem: "ledger",
			Name:      "call_failures_total",
			Help:      "Failed ledger round trips by contract, method and kind.",
		}, []string{"contract", "method", "kind"}),
		confirm: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tradehub",
			Subsystem: "ledger",
			Name:      "confirmation_seconds",
			Help:      "Wall time from submit to confirmed receipt.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.calls, c.failures, c.confirm)
	}
	return c
}

func (c *instrumentedClient) Call(ctx context.Context, contract, method string, args ...any) (Tuple, error) {
	c.calls.WithLabelValues(contract, method, "read").Inc()
	out, err := c.next.Call(ctx, contract, method, args...)
	if err != nil {
		c.failures.WithLabelValues(contract, method, "read").Inc()
	}
	return out, err
}

func (c *instrumentedClient) Submit(ctx context.Context, signer Signer, contract, method string, fees FeePolicy, args ...any) (*Receipt, error) {
	c.calls.WithLabelValues(contract, method, "write").Inc()
	started := time.Now()
	rcpt, err := c.next.Submit(ctx, signer, contract, method, fees, args...)
	if err != nil {
		c.failures.WithLabelValues(contract, method, "write").Inc()
		return nil, err
	}
	c.confirm.Observe(time.Since(started).Seconds())
	return rcpt, nil
}
