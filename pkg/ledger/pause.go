package ledger

// PauseGate halts new initiations while set.
// Completion and cancellation never consult it.
type PauseGate struct {
	paused bool
}

// NewPauseGate returns a gate in the given state.
func NewPauseGate(paused bool) *PauseGate {
	return &PauseGate{paused: paused}
}

// Paused reports whether new initiations are blocked.
func (g *PauseGate) Paused() bool { return g.paused }

func (g *PauseGate) Pause() { g.paused = true }

func (g *PauseGate) Unpause() { g.paused = false }

// RequireNotPaused fails with ErrContractPaused while the gate is set.
func (g *PauseGate) RequireNotPaused() error {
	if g.paused {
		return ErrContractPaused
	}
	return nil
}
