package world

// Phase is a state of the level generation state machine.
type Phase int

const (
	// PhaseInitializing fills the grid with random walls.
	PhaseInitializing Phase = iota
	// PhaseShapingA runs the shaping kernel with boundary enforcement.
	PhaseShapingA
	// PhaseShapingB runs the smoothing kernel with boundary enforcement.
	PhaseShapingB
	// PhaseFinishing removes orphans, carves the entrances and smooths once.
	PhaseFinishing
	// PhaseVerifying runs the openness check.
	PhaseVerifying
	// PhaseRetrying discards the attempt and starts over.
	PhaseRetrying
	// PhaseDone is terminal: the grid was accepted.
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseShapingA:
		return "shaping_a"
	case PhaseShapingB:
		return "shaping_b"
	case PhaseFinishing:
		return "finishing"
	case PhaseVerifying:
		return "verifying"
	case PhaseRetrying:
		return "retrying"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
