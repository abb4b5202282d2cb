package chase

// RunState is the top-level state of a run.
type RunState int

const (
	StateActive RunState = iota
	StatePaused
	StateEnded // Terminal for the run; a restart starts a new one
)

func (s RunState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
