// Package errgroup bridges abortscope scopes and golang.org/x/sync/errgroup.
// A group attached to a scope observes the scope's cancellation through its
// context, so a single fan-out reaches errgroup-managed goroutines too.
package errgroup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mzats/go-abortscope/abortscope"
)

// WithScope creates an errgroup.Group whose context is canceled when sc
// runs a cancellation pass or when ctx itself is canceled. The hook is
// registered as an operation on sc, so attaching a group re-arms the scope
// like any other registration.
func WithScope(ctx context.Context, sc *abortscope.Scope) (*errgroup.Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	bound, _ := sc.BindContext(ctx)
	return errgroup.WithContext(bound)
}
