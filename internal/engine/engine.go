// Package engine implements the game simulation: bird physics, the pipe
// stream, collision detection and scoring. It is pure logic with no
// dependency on rendering or input handling; an external driver calls Tick
// once per frame and ApplyImpulse on player input.
package engine

import (
	"math/rand"
)

// State is the phase the simulation is in. Only StatePlaying advances the
// world; Tick is inert in the other two.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Bird is the player avatar. X stays fixed after spawn; only Y and the
// vertical velocity change during play.
type Bird struct {
	X   float64
	Y   float64
	Vel float64
}

// Engine owns all mutable game state. It is not safe for concurrent use;
// the driver serializes Tick and ApplyImpulse onto one goroutine.
type Engine struct {
	params    Params
	rng       *rand.Rand
	bird      Bird
	pipes     []Pipe
	score     int
	highScore int
	state     State
	tick      uint64
}

// New creates an engine in the menu state. The seed drives pipe generation;
// pass a fixed seed for reproducible runs.
func New(p Params, seed int64) *Engine {
	return &Engine{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
		pipes:  make([]Pipe, 0, 8),
		state:  StateMenu,
	}
}

// Reset reinitializes the world and starts play: bird at the start position
// with zero velocity, no pipes, score zero. The high score survives.
func (e *Engine) Reset() {
	e.bird = Bird{
		X: e.params.BirdX,
		Y: e.params.CanvasH / 2,
	}
	e.pipes = e.pipes[:0]
	e.score = 0
	e.tick = 0
	e.state = StatePlaying
}

// ApplyImpulse handles the single player input. During play it sets the
// bird's velocity to the upward impulse; in the menu and game-over states
// the same input starts (or restarts) a round.
func (e *Engine) ApplyImpulse() {
	switch e.state {
	case StatePlaying:
		e.bird.Vel = e.params.Impulse
	case StateMenu, StateGameOver:
		e.Reset()
	}
}

// Tick advances the simulation by one frame. Outside StatePlaying it does
// nothing, so the driver may keep ticking across the menu and game-over
// screens.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.tick++

	// Gravity lands twice per tick: once in the velocity update and once
	// more in the position delta. The reference tuning depends on the
	// double application; folding it into one changes the feel.
	e.bird.Vel += e.params.Gravity
	e.bird.Y += e.bird.Vel + e.params.Gravity

	e.advancePipes()
	e.recyclePipes()
	e.spawnIfNeeded()
	e.scorePassed()

	if e.collides() {
		e.state = StateGameOver
		if e.score > e.highScore {
			e.highScore = e.score
		}
	}
}

// State returns the current simulation phase.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current round's score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score seen since the engine was created.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Params returns the world tunables the engine was built with.
func (e *Engine) Params() Params {
	return e.params
}
