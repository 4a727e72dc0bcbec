package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/engine"
	"github.com/vovakirdan/flappy-tui/internal/scores"
)

func newTestModel() (Model, *engine.Engine) {
	eng := engine.New(engine.DefaultParams(), 1)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(eng, scores.NewBoard(), cfg, "tester"), eng
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg(time.Now()))
}

func TestFlapLandsOnTheNextTick(t *testing.T) {
	m, eng := newTestModel()

	// Key input alone must not reach the engine mid-frame.
	m = step(t, m, keyMsg(" "))
	if eng.State() != engine.StateMenu {
		t.Fatal("input reached the engine before the tick drained it")
	}

	m = tick(t, m)
	if eng.State() != engine.StatePlaying {
		t.Fatalf("queued flap should start a round, state = %v", eng.State())
	}

	// During play a queued flap sets the impulse at the head of the frame.
	p := eng.Params()
	m = step(t, m, keyMsg(" "))
	m = tick(t, m)
	if got := eng.Snapshot().Bird.Vel; got != p.Impulse+p.Gravity {
		t.Errorf("velocity after flap tick = %v, expected %v", got, p.Impulse+p.Gravity)
	}

	// A drained frame is empty: the following tick is pure gravity.
	m = tick(t, m)
	if got := eng.Snapshot().Bird.Vel; got != p.Impulse+2*p.Gravity {
		t.Errorf("velocity after quiet tick = %v, expected %v", got, p.Impulse+2*p.Gravity)
	}
}

func TestMouseClickQueuesFlap(t *testing.T) {
	m, eng := newTestModel()

	m = step(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if eng.State() != engine.StateMenu {
		t.Fatal("click reached the engine before the tick drained it")
	}

	m = tick(t, m)
	if eng.State() != engine.StatePlaying {
		t.Errorf("queued click should start a round, state = %v", eng.State())
	}
}

func TestRestartKeyOnlyActsAfterGameOver(t *testing.T) {
	m, eng := newTestModel()
	m = step(t, m, keyMsg(" "))
	m = tick(t, m)

	// Mid-play the restart key is inert.
	score := eng.Score()
	m = step(t, m, keyMsg("r"))
	m = tick(t, m)
	if eng.State() != engine.StatePlaying || eng.Score() != score {
		t.Fatal("restart key must not disturb a round in progress")
	}

	// Free fall into the ground ends the round well before any pipe arrives.
	for i := 0; i < 60 && eng.State() == engine.StatePlaying; i++ {
		m = tick(t, m)
	}
	if eng.State() != engine.StateGameOver {
		t.Fatal("expected the bird to hit the ground")
	}

	m = step(t, m, keyMsg("r"))
	m = tick(t, m)
	if eng.State() != engine.StatePlaying {
		t.Errorf("restart key after game over should start a round, state = %v", eng.State())
	}
}

func TestScoreboardOpensFromMenu(t *testing.T) {
	m, _ := newTestModel()

	m = step(t, m, keyMsg("tab"))
	m = tick(t, m)
	if !m.showScores {
		t.Fatal("tab should open the scoreboard outside of play")
	}

	m = step(t, m, keyMsg("esc"))
	if m.showScores {
		t.Error("esc should close the scoreboard")
	}
}
