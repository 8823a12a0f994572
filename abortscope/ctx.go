package abortscope

import "context"

// BindContext derives a context from parent that is canceled when this
// scope runs a cancellation pass. The hook is registered as an operation,
// so it participates in FIFO draining and re-arms the scope like any other
// registration. The returned CancelFunc releases the context early; calling
// it does not remove the registration (the drained hook is then a no-op).
func (s *Scope) BindContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	s.MustRegister(CancelerFunc(cancel))
	return ctx, cancel
}
