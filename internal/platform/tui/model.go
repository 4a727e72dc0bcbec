package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/engine"
	"github.com/vovakirdan/flappy-tui/internal/scores"
)

// Model is the Bubble Tea model driving one game session. It owns the frame
// clock and input mapping; all state mutation funnels through the tea update
// loop, so engine calls are never concurrent.
type Model struct {
	eng        *engine.Engine
	screen     *core.Screen
	board      *scores.Board
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      core.InputFrame
	player     string
	scoreboard ScoreboardModel
	showScores bool
	scoreSaved bool
	quitting   bool
}

// NewModel creates a session model around an engine. The board may be
// shared with other sessions; player names the session on the board.
func NewModel(eng *engine.Engine, board *scores.Board, cfg core.RuntimeConfig, player string) Model {
	return Model{
		eng:        eng,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		input:      core.NewInputFrame(),
		player:     player,
		scoreboard: NewScoreboardModel(board, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the frame clock. The engine begins on the menu screen; the
// first flap starts the round.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Scoreboard navigation acts on the
// spot; game input accumulates into the frame and lands on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == core.ActionBack || action == core.ActionScores {
			m.showScores = false
			return m, nil
		}
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse queues a click on the play surface as a flap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Set(core.ActionFlap)
	}
	return m, nil
}

// impulse forwards the player input to the engine and rearms score saving
// when it started a new round.
func (m *Model) impulse() {
	m.eng.ApplyImpulse()
	if m.eng.State() == engine.StatePlaying {
		m.scoreSaved = false
	}
}

// handleResize adjusts the screen buffer. The simulation canvas is fixed,
// so a resize never disturbs a round in progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scoreboard.SetSize(msg.Width, msg.Height)
	return m, nil
}

// drainInput applies the actions accumulated since the previous frame.
// Draining at the head of the tick keeps input and simulation on one
// logical timeline: a flap is always visible to the frame it precedes.
func (m *Model) drainInput() {
	defer m.input.Clear()

	switch {
	case m.input.Has(core.ActionFlap), m.input.Has(core.ActionConfirm):
		m.impulse()

	case m.input.Has(core.ActionRestart):
		// The impulse doubles as restart outside of play
		if m.eng.State() == engine.StateGameOver {
			m.impulse()
		}

	case m.input.Has(core.ActionScores):
		if m.eng.State() != engine.StatePlaying {
			m.scoreboard.Refresh()
			m.showScores = true
		}
	}
}

// handleTick drains the input frame, advances the simulation and re-arms
// the clock. Ticks are inert outside of play, so the clock simply keeps
// running across the menu and game-over screens.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.drainInput()
	m.eng.Tick()

	// Record the round once, on the transition into game over.
	if m.eng.State() == engine.StateGameOver && !m.scoreSaved {
		m.scoreSaved = true
		if m.eng.Score() > 0 {
			m.board.Record(m.player, m.eng.Score())
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showScores {
		return m.scoreboard.View()
	}

	snap := m.eng.Snapshot()
	DrawWorld(m.screen, snap, m.eng.Params())

	switch snap.State {
	case engine.StateMenu:
		DrawMenuOverlay(m.screen, m.board.Best())
	case engine.StateGameOver:
		DrawGameOverOverlay(m.screen, snap.Score, snap.HighScore)
	}

	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program for one game session.
func Run(eng *engine.Engine, board *scores.Board, cfg core.RuntimeConfig, player string) error {
	model := NewModel(eng, board, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to flap
	)

	_, err := p.Run()
	return err
}
