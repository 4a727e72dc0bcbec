package scores

import (
	"fmt"
	"sync"
	"testing"
)

func TestRecordAndTop(t *testing.T) {
	b := NewBoard()

	b.Record("alice", 100)
	b.Record("bob", 50)
	b.Record("alice", 200)

	top := b.Top(10)
	if len(top) != 3 {
		t.Fatalf("Top returned %d entries, expected 3", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Top not sorted descending: %v", top)
	}
	if top[0].Player != "alice" {
		t.Errorf("leader = %q, expected alice", top[0].Player)
	}
}

func TestTopLimit(t *testing.T) {
	b := NewBoard()
	for i := 1; i <= 5; i++ {
		b.Record("p", i*100)
	}

	top := b.Top(3)
	if len(top) != 3 {
		t.Fatalf("Top(3) returned %d entries", len(top))
	}
	if top[0].Score != 500 || top[2].Score != 300 {
		t.Errorf("Top(3) = %v, expected 500..300", top)
	}

	// Non-positive limit falls back to 10
	if got := len(b.Top(0)); got != 5 {
		t.Errorf("Top(0) returned %d entries, expected all 5", got)
	}
}

func TestBest(t *testing.T) {
	b := NewBoard()

	if b.Best() != 0 {
		t.Errorf("empty board Best() = %d, expected 0", b.Best())
	}

	b.Record("alice", 3)
	b.Record("bob", 9)
	b.Record("alice", 7)

	if b.Best() != 9 {
		t.Errorf("Best() = %d, expected 9", b.Best())
	}
	if b.BestFor("alice") != 7 {
		t.Errorf("BestFor(alice) = %d, expected 7", b.BestFor("alice"))
	}
	if b.BestFor("nobody") != 0 {
		t.Errorf("BestFor(nobody) = %d, expected 0", b.BestFor("nobody"))
	}
}

func TestClear(t *testing.T) {
	b := NewBoard()
	b.Record("alice", 5)
	b.Clear()

	if b.Len() != 0 || b.Best() != 0 {
		t.Error("Clear should empty the board")
	}
}

func TestConcurrentRecording(t *testing.T) {
	b := NewBoard()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Record(fmt.Sprintf("session-%d", n), j)
			}
		}(i)
	}
	wg.Wait()

	if b.Len() != 400 {
		t.Errorf("Len() = %d after concurrent writes, expected 400", b.Len())
	}
	if b.Best() != 49 {
		t.Errorf("Best() = %d, expected 49", b.Best())
	}
}
