package log

import (
	"testing"
)

// NewTestingLogger returns a logger that writes through t.Log when the
// test binary runs with the verbose (-v) flag and is a nop otherwise.
// It must be called from inside a test, not from an init func, as the
// verbose flag is only set once testing has started.
func NewTestingLogger(t testing.TB) Logger {
	if !testing.Verbose() {
		return NewNopLogger()
	}

	logger, err := NewDefaultLogger(LogFormatPlain, LogLevelDebug, testingWriter{t})
	if err != nil {
		t.Fatalf("failed to create testing logger: %v", err)
	}
	return logger
}

type testingWriter struct {
	t testing.TB
}

func (w testingWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
