package abortscope

// Event identifies a lifecycle notification kind. Exactly two kinds exist
// and neither carries a payload.
type Event string

const (
	// EventAbort fires before a cancellation pass touches any operation.
	EventAbort Event = "abort"
	// EventAborted fires after a pass has canceled every operation and
	// child and marked the scope canceled.
	EventAborted Event = "aborted"
)

// Listener is a callback invoked synchronously on a lifecycle event.
type Listener func()

// Registration is the handle returned by AddListener. Go function values
// are not comparable, so a subscription is identified by its handle: the
// same callback may be registered more than once and each registration is
// removed individually.
type Registration struct {
	kind Event
	fn   Listener
}

// AddListener subscribes fn to the given event kind. Listeners fire in
// registration order and are not deduplicated. A nil fn returns a nil
// handle and subscribes nothing.
func (s *Scope) AddListener(kind Event, fn Listener) *Registration {
	if fn == nil {
		return nil
	}
	reg := &Registration{kind: kind, fn: fn}
	s.mu.Lock()
	s.listeners[kind] = append(s.listeners[kind], reg)
	s.mu.Unlock()
	return reg
}

// RemoveListener unsubscribes the registration returned by AddListener.
// It is a no-op, not an error, if reg is nil or already removed.
func (s *Scope) RemoveListener(reg *Registration) {
	if reg == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	regs := s.listeners[reg.kind]
	for i, r := range regs {
		if r == reg {
			s.listeners[reg.kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// OnAbort subscribes fn to the "abort" event.
func (s *Scope) OnAbort(fn Listener) *Registration { return s.AddListener(EventAbort, fn) }

// OnAborted subscribes fn to the "aborted" event.
func (s *Scope) OnAborted(fn Listener) *Registration { return s.AddListener(EventAborted, fn) }

// emit invokes every listener of kind in registration order. The listener
// list is snapshotted under the lock; callbacks run unlocked and may
// re-enter the scope.
func (s *Scope) emit(kind Event) {
	s.mu.Lock()
	regs := append([]*Registration(nil), s.listeners[kind]...)
	s.mu.Unlock()
	for _, r := range regs {
		r.fn()
	}
}
