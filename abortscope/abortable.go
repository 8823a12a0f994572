package abortscope

// Abortable pairs an arbitrary value with a cancellation procedure so the
// pair satisfies Canceler and can be handed to Scope.Register. Go has no
// open extension of foreign values, so the decoration is a wrapper: the
// wrapped value itself is left untouched.
type Abortable[T any] struct {
	Value  T
	cancel func()
}

// ToAbortable wraps value with the given cancellation procedure.
func ToAbortable[T any](value T, cancel func()) *Abortable[T] {
	return &Abortable[T]{Value: value, cancel: cancel}
}

// Cancel invokes the wrapped procedure. A wrapper constructed without one
// panics: an operation that cannot be canceled is a contract violation,
// not a silent no-op.
func (a *Abortable[T]) Cancel() {
	if a.cancel == nil {
		panic("abortscope: Abortable has no cancel procedure")
	}
	a.cancel()
}
