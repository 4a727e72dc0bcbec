package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/scores"
)

// maxScores is how many rows the scoreboard loads from the board.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreboardFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// ScoreboardModel shows the session leaderboard in a scrollable table.
// Scores live in memory only, so this is always "since the process started".
type ScoreboardModel struct {
	board  *scores.Board
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard over the given board.
func NewScoreboardModel(board *scores.Board, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		board:  board,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "When", Width: 8},
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	m.Refresh()
	return m
}

// tableHeight leaves room for the title, frame and help line.
func tableHeight(screenH int) int {
	h := screenH - 8
	if h < 3 {
		h = 3
	}
	return h
}

// Refresh reloads the rows from the board.
func (m *ScoreboardModel) Refresh() {
	entries := m.board.Top(maxScores)

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			e.RecordedAt.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
}

// SetSize updates the scoreboard dimensions.
func (m *ScoreboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(tableHeight(height))
}

// Update handles scrolling. Back and quit are the caller's concern.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard centered on the screen.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render("Session High Scores")

	body := m.table.View()
	if m.board.Len() == 0 {
		body = "No rounds played yet.\nScores reset when the process exits."
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		body,
		"",
		m.help.View(m.keys),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		scoreboardFrameStyle.Render(content),
	)
}
