// Package telemetry is the Go realization of spec.md §5's advisory
// TaskCallbacks surface: Progress and Log hooks the solver calls at coarse
// phase boundaries, never on a hot path, and never relied on for
// correctness — a nil hook is simply never invoked.
//
// NewZerologSink wraps a zerolog.Logger as a Callbacks.Log-compatible
// function for callers who want real structured logging; a caller who just
// wants the advisory string can supply any func(Level, string, ...Field).
package telemetry
