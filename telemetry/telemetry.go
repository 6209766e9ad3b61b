package telemetry

// Level is the severity of a Log call. Solver code only ever emits Debug
// and Info (spec.md §5's "coarse boundaries" constraint); Warn and Error
// are available for callers composing their own Log hooks.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String renders the level the way zerolog's own level names read.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Field is one structured key/value pair attached to a Log call.
type Field struct {
	Key   string
	Value interface{}
}

// Callbacks is the advisory hook surface passed into assemble.Solve. Both
// fields are optional; callers check for nil before invoking either, so a
// zero Callbacks costs nothing beyond the check itself.
type Callbacks struct {
	// Progress reports coarse completion, 0..100, with a phase label
	// ("placements", "cover", "done").
	Progress func(percent float64, phase string)

	// Log reports a structured diagnostic message.
	Log func(level Level, msg string, fields ...Field)
}

// Logf calls c.Log if set, centralizing the nil-check for callers holding
// a Callbacks value rather than its two bare funcs.
func (c Callbacks) Logf(level Level, msg string, fields ...Field) {
	if c.Log != nil {
		c.Log(level, msg, fields...)
	}
}

// Progressf calls c.Progress if set.
func (c Callbacks) Progressf(percent float64, phase string) {
	if c.Progress != nil {
		c.Progress(percent, phase)
	}
}
