package engine

// collides evaluates the end-of-round predicate against the bird's current
// position and the pipe stream.
//
// The bird dies on the ceiling (y <= 0), the ground (y >= canvas bottom
// minus its size), or on any pipe it horizontally overlaps while its body
// is not fully inside that pipe's gap. Horizontal extents are half-open:
// [x, x+size) against [pipe.x, pipe.x+width).
func (e *Engine) collides() bool {
	p := e.params
	b := e.bird

	if b.Y <= 0 || b.Y >= p.CanvasH-p.BirdSize {
		return true
	}

	for _, pipe := range e.pipes {
		overlaps := b.X < pipe.X+p.PipeW && pipe.X < b.X+p.BirdSize
		if !overlaps {
			continue
		}
		if b.Y < pipe.TopHeight || b.Y+p.BirdSize > pipe.BottomY {
			return true
		}
	}
	return false
}
