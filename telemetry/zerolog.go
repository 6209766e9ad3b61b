package telemetry

import "github.com/rs/zerolog"

// NewZerologSink wraps logger as a Callbacks.Log-compatible function: each
// Field becomes a structured key/value pair on the emitted event via
// zerolog's Interface, so callers get real structured output rather than a
// flattened string.
func NewZerologSink(logger zerolog.Logger) func(level Level, msg string, fields ...Field) {
	return func(level Level, msg string, fields ...Field) {
		event := logger.WithLevel(toZerologLevel(level))
		for _, f := range fields {
			event = event.Interface(f.Key, f.Value)
		}
		event.Msg(msg)
	}
}

func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
