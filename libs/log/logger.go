package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogFormatPlain defines a logging format using colorless,
	// human-readable console output.
	LogFormatPlain = "plain"

	// LogFormatJSON defines a logging format using structured JSON output.
	LogFormatJSON = "json"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
)

// Logger is what any library in this module should take.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	With(keyvals ...interface{}) Logger
}

type defaultLogger struct {
	zerolog.Logger
}

// NewDefaultLogger returns a default logger that writes to w using the
// given format and filtering at the given level. It returns an error
// for unsupported formats or levels.
func NewDefaultLogger(format, level string, w io.Writer) (Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	var logWriter io.Writer
	switch format {
	case LogFormatPlain:
		logWriter = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	case LogFormatJSON:
		logWriter = w
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return defaultLogger{
		Logger: zerolog.New(logWriter).Level(logLevel).With().Timestamp().Logger(),
	}, nil
}

// MustNewDefaultLogger delegates a call to NewDefaultLogger where an
// error is panicked, writing to STDERR.
func MustNewDefaultLogger(format, level string) Logger {
	logger, err := NewDefaultLogger(format, level, os.Stderr)
	if err != nil {
		panic(err)
	}
	return logger
}

func (l defaultLogger) Debug(msg string, keyvals ...interface{}) {
	l.Logger.Debug().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) Info(msg string, keyvals ...interface{}) {
	l.Logger.Info().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) Error(msg string, keyvals ...interface{}) {
	l.Logger.Error().Fields(getLogFields(keyvals...)).Msg(msg)
}

func (l defaultLogger) With(keyvals ...interface{}) Logger {
	return defaultLogger{
		Logger: l.Logger.With().Fields(getLogFields(keyvals...)).Logger(),
	}
}

func getLogFields(keyvals ...interface{}) map[string]interface{} {
	if len(keyvals)%2 != 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(keyvals))
	for i := 0; i < len(keyvals); i += 2 {
		fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}

	return fields
}
