// Package prom provides a Prometheus-backed observer for abortscope.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer exports scope lifecycle metrics to a Prometheus registry.
// It implements the abortscope.Observer interface.
type Observer struct {
	scopesCreated prometheus.Counter
	cancelPasses  prometheus.Counter
	opsCanceled   prometheus.Counter
	childCancels  prometheus.Counter
	pendingOps    prometheus.Histogram
	passDuration  prometheus.Histogram
}

// New builds an Observer and registers its collectors with reg.
func New(reg prometheus.Registerer) *Observer {
	f := promauto.With(reg)
	return &Observer{
		scopesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: "abortscope",
			Name:      "scopes_created_total",
			Help:      "Number of scopes created.",
		}),
		cancelPasses: f.NewCounter(prometheus.CounterOpts{
			Namespace: "abortscope",
			Name:      "cancel_passes_total",
			Help:      "Number of completed cancellation passes.",
		}),
		opsCanceled: f.NewCounter(prometheus.CounterOpts{
			Namespace: "abortscope",
			Name:      "operations_canceled_total",
			Help:      "Number of operations canceled by fan-out passes.",
		}),
		childCancels: f.NewCounter(prometheus.CounterOpts{
			Namespace: "abortscope",
			Name:      "child_cancels_total",
			Help:      "Number of child scope cancellations propagated.",
		}),
		pendingOps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "abortscope",
			Name:      "pending_operations",
			Help:      "Operations registered when a pass starts.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		passDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "abortscope",
			Name:      "cancel_pass_duration_seconds",
			Help:      "Duration of cancellation passes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ScopeCreated counts scope construction.
func (o *Observer) ScopeCreated() { o.scopesCreated.Inc() }

// CancelStarted records the registry size at the start of a pass.
func (o *Observer) CancelStarted(pending int) { o.pendingOps.Observe(float64(pending)) }

// OperationCanceled counts one drained operation.
func (o *Observer) OperationCanceled() { o.opsCanceled.Inc() }

// ChildCanceled counts one propagated child cancellation.
func (o *Observer) ChildCanceled() { o.childCancels.Inc() }

// CancelFinished counts a completed pass and records its duration.
func (o *Observer) CancelFinished(dur time.Duration, _ int) {
	o.cancelPasses.Inc()
	o.passDuration.Observe(dur.Seconds())
}
