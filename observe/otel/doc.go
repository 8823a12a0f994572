// Package otel reserves an OpenTelemetry observer integration point for
// abortscope. It emits span events for scope lifecycle without adding
// dependencies yet.
package otel
