package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse clicks. The platform maps raw input onto these.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, mouse click - the impulse
	ActionConfirm        // Enter - confirm selection in overlays
	ActionBack           // B, Escape - leave the scoreboard
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionScores         // Tab - open the session scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered since the last tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all triggered actions, readying the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
