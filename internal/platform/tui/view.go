package tui

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/engine"
)

// Visual characters for rendering
const (
	birdHeadChar  = '▶'
	birdBodyChar  = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// DrawWorld projects the simulation canvas onto the terminal screen.
// The bottom row is reserved for the ground line; everything else is scaled
// from world units to cells.
func DrawWorld(dst *core.Screen, snap engine.Snapshot, p engine.Params) {
	dst.Clear()

	w := dst.Width()
	groundY := dst.Height() - 1
	if w <= 0 || groundY <= 0 {
		return
	}

	sx := float64(w) / p.CanvasW
	sy := float64(groundY) / p.CanvasH

	for _, pipe := range snap.Pipes {
		drawPipe(dst, pipe, p, sx, sy, groundY)
	}

	for x := 0; x < w; x++ {
		dst.SetColored(x, groundY, groundChar, core.ColorGray)
	}

	drawBird(dst, snap.Bird, p, sx, sy)
	drawHUD(dst, snap)
}

// drawPipe renders both segments of one pipe, with caps at the gap edges.
func drawPipe(dst *core.Screen, pipe engine.Pipe, p engine.Params, sx, sy float64, groundY int) {
	x0 := int(pipe.X * sx)
	x1 := int((pipe.X + p.PipeW) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	topCell := int(pipe.TopHeight * sy)
	bottomCell := int(pipe.BottomY * sy)

	for x := x0; x < x1; x++ {
		dst.DrawVLineColored(x, 0, topCell, pipeChar, core.ColorGreen)
		if topCell > 0 {
			dst.SetColored(x, topCell-1, pipeCapTop, core.ColorGreen)
		}
		dst.DrawVLineColored(x, bottomCell, groundY-bottomCell, pipeChar, core.ColorGreen)
		if bottomCell < groundY {
			dst.SetColored(x, bottomCell, pipeCapBottom, core.ColorGreen)
		}
	}
}

// drawBird renders the bird hitbox; at typical terminal sizes it collapses
// to a one- or two-cell sprite.
func drawBird(dst *core.Screen, bird engine.Bird, p engine.Params, sx, sy float64) {
	bx := int(bird.X * sx)
	by := int(bird.Y * sy)
	bw := core.Max(1, int(p.BirdSize*sx))
	bh := core.Max(1, int(p.BirdSize*sy))

	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			ch := birdBodyChar
			if dx == bw-1 && dy == 0 {
				ch = birdHeadChar
			}
			dst.SetColored(bx+dx, by+dy, ch, core.ColorBrightYellow)
		}
	}
}

// drawHUD writes the score line into the top row.
func drawHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" Score: %d ", snap.Score)
	if snap.HighScore > 0 {
		hud += fmt.Sprintf("| Best: %d ", snap.HighScore)
	}
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)
}

// DrawMenuOverlay draws the start screen box over the world.
func DrawMenuOverlay(dst *core.Screen, best int) {
	subtitle := "Space to flap through the gaps"
	if best > 0 {
		subtitle = fmt.Sprintf("Best this session: %d", best)
	}
	drawCenteredMessage(dst, "F L A P P Y", subtitle, "Press Space to start  |  Q to quit")
}

// DrawGameOverOverlay draws the end screen box over the frozen world.
func DrawGameOverOverlay(dst *core.Screen, score, best int) {
	result := fmt.Sprintf("Score: %d  |  Best: %d", score, best)
	drawCenteredMessage(dst, "GAME OVER", result, "Space to retry  |  Tab for scores  |  Q to quit")
}

// drawCenteredMessage draws a bordered three-line message box in the center
// of the screen.
func drawCenteredMessage(dst *core.Screen, title, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(core.Max(len(title), len(line1)), len(line2)) + 4
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, line1)
	dst.DrawTextCentered(boxY+5, line2)
}
