package engine

// Snapshot is a read-only copy of the engine state, taken once per frame by
// the renderer. The pipe slice is copied so the renderer never aliases the
// engine's mutable storage.
type Snapshot struct {
	Tick      uint64
	Bird      Bird
	Pipes     []Pipe
	Score     int
	HighScore int
	State     State
}

// Snapshot returns the current simulation state for rendering and replay
// verification.
func (e *Engine) Snapshot() Snapshot {
	pipes := make([]Pipe, len(e.pipes))
	copy(pipes, e.pipes)

	return Snapshot{
		Tick:      e.tick,
		Bird:      e.bird,
		Pipes:     pipes,
		Score:     e.score,
		HighScore: e.highScore,
		State:     e.state,
	}
}
