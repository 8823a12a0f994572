package zlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mzats/go-abortscope/abortscope"
)

var _ abortscope.Observer = (*Observer)(nil)

func TestObserverLogsPass(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.TraceLevel)

	s := abortscope.New(abortscope.WithObserver(New(log)))
	s.MustRegister(abortscope.CancelerFunc(func() {}))
	s.Cancel()

	out := buf.String()
	for _, want := range []string{
		"scope created",
		"cancel pass started",
		"operation canceled",
		"cancel pass finished",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestObserverQuietAboveTrace(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	s := abortscope.New(abortscope.WithObserver(New(log)))
	s.MustRegister(abortscope.CancelerFunc(func() {}))
	s.Cancel()

	if buf.Len() != 0 {
		t.Fatalf("expected no output at info level, got:\n%s", buf.String())
	}
}
