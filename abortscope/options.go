package abortscope

import "time"

// Option configures a Scope at construction time.
type Option func(*Options)

// Options holds construction configuration.
type Options struct {
	Children []*Scope
	Observer Observer
}

func defaultOptions() Options { return Options{} }

// WithChildren attaches the given scopes as children, in order, at
// construction time.
func WithChildren(children ...*Scope) Option {
	return func(o *Options) { o.Children = append(o.Children, children...) }
}

// WithObserver attaches an observer receiving lifecycle hooks.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Observer receives scope lifecycle hooks. It is plumbing for metrics and
// logging backends (see observe/), distinct from the event listeners a
// scope exposes to its callers.
type Observer interface {
	ScopeCreated()
	CancelStarted(pending int)
	OperationCanceled()
	ChildCanceled()
	CancelFinished(dur time.Duration, ops int)
}
