package engine

// Pipe is one gated obstacle. The gap spans [TopHeight, BottomY); the
// segments above and below it are solid. BottomY-TopHeight == PipeGap for
// every pipe the engine ever produces.
type Pipe struct {
	X         float64 // Left edge, decreasing over time
	TopHeight float64 // Gap top edge
	BottomY   float64 // Gap bottom edge
	Passed    bool    // Set once the bird has cleared this pipe
}

// advancePipes moves every pipe left by one tick's worth of travel.
func (e *Engine) advancePipes() {
	for i := range e.pipes {
		e.pipes[i].X -= e.params.PipeSpeed
	}
}

// recyclePipes drops pipes that are fully off the left edge, keeping the
// remainder in order (oldest/leftmost first).
func (e *Engine) recyclePipes() {
	live := e.pipes[:0]
	for _, p := range e.pipes {
		if p.X > -e.params.PipeW {
			live = append(live, p)
		}
	}
	e.pipes = live
}

// spawnIfNeeded appends a new pipe at the right edge once the rightmost
// pipe has traveled far enough in, or when the stream is empty.
func (e *Engine) spawnIfNeeded() {
	if len(e.pipes) > 0 && e.pipes[len(e.pipes)-1].X >= e.params.CanvasW-e.params.SpawnAhead {
		return
	}
	e.pipes = append(e.pipes, e.generatePipe())
}

// generatePipe picks a uniformly random gap position between the margins.
func (e *Engine) generatePipe() Pipe {
	p := e.params
	span := p.CanvasH - p.PipeGap - p.TopMargin - p.BottomMargin
	top := e.rng.Float64()*span + p.TopMargin
	return Pipe{
		X:         p.CanvasW,
		TopHeight: top,
		BottomY:   top + p.PipeGap,
	}
}

// scorePassed awards a point for each pipe whose right edge has moved left
// of the bird's x position for the first time.
func (e *Engine) scorePassed() {
	for i := range e.pipes {
		if !e.pipes[i].Passed && e.pipes[i].X+e.params.PipeW < e.bird.X {
			e.pipes[i].Passed = true
			e.score++
		}
	}
}
