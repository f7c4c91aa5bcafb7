package simulation

// State is the lifecycle phase of an Engine.
type State int

const (
	Configured State = iota
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "unknown"
}
