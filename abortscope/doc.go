// Package abortscope provides a composable in-process cancellation
// primitive. A Scope collects cancelable operations and child scopes and
// propagates a single cancellation signal to all of them, emitting lifecycle
// events before and after the fan-out.
package abortscope
