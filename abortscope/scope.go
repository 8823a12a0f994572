package abortscope

import (
	"errors"
	"reflect"
	"sync"
	"time"
)

// ErrNilOperation is returned by Register when the operation is nil. An
// operation without a cancel capability is a contract violation and is
// rejected up front rather than failing later inside a fan-out pass.
var ErrNilOperation = errors.New("abortscope: nil operation")

// Canceler is the capability contract every registered operation satisfies:
// a zero-argument cancellation procedure. The scope is agnostic to any other
// shape of the operation.
type Canceler interface {
	Cancel()
}

// CancelerFunc adapts a plain function to the Canceler interface.
type CancelerFunc func()

// Cancel invokes f.
func (f CancelerFunc) Cancel() { f() }

// Scope aggregates cancelable operations and child scopes. A call to Cancel
// fans the signal out to every registered operation (FIFO) and then to every
// child scope (attach order), with an "abort" event before the pass and an
// "aborted" event after it.
//
// A scope is reusable: a pass drains the operation registry but keeps
// children and listeners, and registering new work re-arms the scope so a
// later Cancel fires again.
type Scope struct {
	mu        sync.Mutex
	ops       []Canceler
	children  []*Scope
	listeners map[Event][]*Registration
	ownFlag   bool

	obs Observer
}

// New constructs a scope. Children listed via WithChildren are attached in
// the given order; no other configuration is required.
func New(optFns ...Option) *Scope {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	s := &Scope{
		children:  append([]*Scope(nil), opts.Children...),
		listeners: make(map[Event][]*Registration),
		obs:       opts.Observer,
	}
	if s.obs != nil {
		s.obs.ScopeCreated()
	}
	return s
}

// IsCanceled reports whether this scope and, recursively, every child scope
// has completed a cancellation pass. The value is recomputed on every read
// rather than cached; children change state independently of the parent.
func (s *Scope) IsCanceled() bool {
	s.mu.Lock()
	own := s.ownFlag
	children := append([]*Scope(nil), s.children...)
	s.mu.Unlock()
	if !own {
		return false
	}
	for _, c := range children {
		if !c.IsCanceled() {
			return false
		}
	}
	return true
}

// Register adds op to the operation registry unless the identical operation
// is already present. Registering re-arms the scope: a completed pass no
// longer counts as canceled and the next Cancel fires again. The caller is
// trusted to only register live, uncanceled work.
//
// Registering mid-pass (for example from an "abort" listener) is legal; the
// running pass drains the newly added operation too.
func (s *Scope) Register(op Canceler) error {
	if op == nil {
		return ErrNilOperation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownFlag = false
	for _, existing := range s.ops {
		if sameOperation(existing, op) {
			return nil
		}
	}
	s.ops = append(s.ops, op)
	return nil
}

// RegisterFunc registers fn as a cancelable operation.
func (s *Scope) RegisterFunc(fn func()) error {
	if fn == nil {
		return ErrNilOperation
	}
	return s.Register(CancelerFunc(fn))
}

// MustRegister is Register that panics on an invalid operation.
func (s *Scope) MustRegister(op Canceler) {
	if err := s.Register(op); err != nil {
		panic(err)
	}
}

// sameOperation reports whether two registered operations are the same by
// identity. Operations with non-comparable dynamic types (funcs, slices)
// are always treated as distinct.
func sameOperation(a, b Canceler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// PendingOperations returns the number of operations currently registered.
func (s *Scope) PendingOperations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

// Cancel runs one fan-out pass:
//
//  1. no-op if IsCanceled already holds,
//  2. emit "abort" to listeners in registration order,
//  3. cancel and remove every registered operation in FIFO order,
//  4. cancel every child scope in attach order, unconditionally,
//  5. mark this scope canceled,
//  6. emit "aborted" to listeners in registration order.
//
// Listeners, operation cancels, and child fan-outs all run with the scope's
// lock released, so they may re-enter the scope; operations registered
// during the pass are drained by the same pass. A panic raised by a listener
// or an operation is not recovered: it propagates to the caller and the
// remainder of the pass does not run, leaving the scope partially canceled
// with its own flag unset.
func (s *Scope) Cancel() {
	if s.IsCanceled() {
		return
	}

	var start time.Time
	if s.obs != nil {
		start = time.Now()
		s.obs.CancelStarted(s.PendingOperations())
	}

	s.emit(EventAbort)

	drained := 0
	for {
		s.mu.Lock()
		if len(s.ops) == 0 {
			s.mu.Unlock()
			break
		}
		op := s.ops[0]
		s.ops = s.ops[1:]
		s.mu.Unlock()

		op.Cancel()
		drained++
		if s.obs != nil {
			s.obs.OperationCanceled()
		}
	}

	s.mu.Lock()
	children := append([]*Scope(nil), s.children...)
	s.mu.Unlock()
	for _, c := range children {
		c.Cancel()
		if s.obs != nil {
			s.obs.ChildCanceled()
		}
	}

	s.mu.Lock()
	s.ownFlag = true
	s.mu.Unlock()

	s.emit(EventAborted)

	if s.obs != nil {
		s.obs.CancelFinished(time.Since(start), drained)
	}
}

// AddChild appends child to the scopes canceled by this scope's fan-out.
// No duplicate check is made: a child attached twice is canceled twice per
// pass, which the child's idempotence guard absorbs. The parent holds a
// relation only; it does not own the child's lifetime.
func (s *Scope) AddChild(child *Scope) {
	if child == nil || child == s {
		return
	}
	s.mu.Lock()
	s.children = append(s.children, child)
	s.mu.Unlock()
}

// RemoveChild removes the first occurrence of child from the child list.
// It is a no-op, not an error, if child was never attached.
func (s *Scope) RemoveChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i:i], s.children[i+1:]...)
			return
		}
	}
}
