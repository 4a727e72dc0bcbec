package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/engine"
)

func testSnapshot() (engine.Snapshot, engine.Params) {
	p := engine.DefaultParams()
	snap := engine.Snapshot{
		Bird: engine.Bird{X: p.BirdX, Y: p.CanvasH / 2},
		Pipes: []engine.Pipe{
			{X: 200, TopHeight: 150, BottomY: 300},
		},
		Score:     3,
		HighScore: 7,
		State:     engine.StatePlaying,
	}
	return snap, p
}

func TestDrawWorld(t *testing.T) {
	snap, p := testSnapshot()
	screen := core.NewScreen(80, 24)

	DrawWorld(screen, snap, p)

	// Ground on the bottom row
	if screen.Get(0, 23) != groundChar {
		t.Errorf("ground row missing, got %q", screen.Get(0, 23))
	}

	// HUD carries the score
	if !strings.Contains(screen.Row(0), "Score: 3") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Best: 7") {
		t.Errorf("HUD row = %q, expected best", screen.Row(0))
	}

	// The bird lands at the scaled canvas position and is colored
	bx := int(snap.Bird.X * 80 / p.CanvasW)
	by := int(snap.Bird.Y * 23 / p.CanvasH)
	cell := screen.GetCell(bx, by)
	if cell.Rune == ' ' {
		t.Errorf("no bird drawn at (%d, %d)", bx, by)
	}
	if cell.Color != core.ColorBrightYellow {
		t.Errorf("bird color = %v, expected bright yellow", cell.Color)
	}

	// Pipe column: solid above the gap top, clear inside the gap
	px := int(205 * 80 / p.CanvasW) // Inside the pipe's horizontal extent
	if screen.GetCell(px, 0).Rune != pipeChar {
		t.Errorf("pipe top segment missing at x=%d", px)
	}
	gapY := int(200 * 23 / p.CanvasH) // Inside the gap vertically
	if got := screen.Get(px, gapY); got != ' ' {
		t.Errorf("gap should be open, found %q", got)
	}
}

func TestOverlays(t *testing.T) {
	snap, p := testSnapshot()
	screen := core.NewScreen(80, 24)

	DrawWorld(screen, snap, p)
	DrawMenuOverlay(screen, 0)
	if !strings.Contains(screen.String(), "F L A P P Y") {
		t.Error("menu overlay missing title")
	}

	DrawWorld(screen, snap, p)
	DrawGameOverOverlay(screen, 3, 7)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing title")
	}
	if !strings.Contains(out, "Score: 3") || !strings.Contains(out, "Best: 7") {
		t.Error("game over overlay missing result line")
	}
}

func TestDrawWorldTinyScreen(t *testing.T) {
	snap, p := testSnapshot()

	// Degenerate sizes must not panic
	DrawWorld(core.NewScreen(0, 0), snap, p)
	DrawWorld(core.NewScreen(1, 1), snap, p)
	DrawWorld(core.NewScreen(5, 2), snap, p)
}
