package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mzats/go-abortscope/abortscope"
)

var _ abortscope.Observer = (*Observer)(nil)

func TestObserverCounters(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	obs := New(reg)

	child := abortscope.New()
	s := abortscope.New(
		abortscope.WithChildren(child),
		abortscope.WithObserver(obs),
	)
	s.MustRegister(abortscope.CancelerFunc(func() {}))
	s.MustRegister(abortscope.CancelerFunc(func() {}))

	s.Cancel()
	s.Cancel() // idempotent, must not double-count

	if got := testutil.ToFloat64(obs.scopesCreated); got != 1 {
		t.Fatalf("scopes_created_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.cancelPasses); got != 1 {
		t.Fatalf("cancel_passes_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.opsCanceled); got != 2 {
		t.Fatalf("operations_canceled_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(obs.childCancels); got != 1 {
		t.Fatalf("child_cancels_total = %v, want 1", got)
	}
}

func TestObserverRegistersCollectors(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	New(reg)

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 6 {
		t.Fatalf("gathered %d metric families, want 6", n)
	}
}
