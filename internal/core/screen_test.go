package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("empty cell = %q, expected space", s.Get(0, 0))
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetColored(1, 1, '█', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green block", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '●')
	if got := s.GetCell(2, 1).Color; got != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", got)
	}

	// Clear resets both rune and color
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell = %+v, expected default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should write runes left to right")
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should clip, keeping in-bounds runes")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawVLineColored(7, 0, 3, '█', ColorCyan)
	for y := 0; y < 3; y++ {
		if c := s.GetCell(7, y); c.Rune != '█' || c.Color != ColorCyan {
			t.Errorf("DrawVLineColored wrong cell at y=%d: %+v", y, c)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'K')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'K' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("content outside the new bounds should be gone")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}

	if s.Row(1) != "  b" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(9) != "   " {
		t.Errorf("out-of-range Row should be blank, got %q", s.Row(9))
	}
}
