package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
