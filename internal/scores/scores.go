// Package scores keeps the process-lifetime score board. Nothing is
// persisted: the board starts empty on every launch and is shared by all
// sessions of a running server, so it needs to be safe for concurrent use.
package scores

import (
	"sort"
	"sync"
	"time"
)

// Entry is a single recorded round.
type Entry struct {
	Player     string
	Score      int
	RecordedAt time.Time
}

// Board is an in-memory leaderboard.
type Board struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Record adds a finished round to the board and returns the stored entry.
func (b *Board) Record(player string, score int) Entry {
	e := Entry{
		Player:     player,
		Score:      score,
		RecordedAt: time.Now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	return e
}

// Top returns up to limit entries ordered by score descending, most recent
// first among ties. Limit <= 0 means 10.
func (b *Board) Top(limit int) []Entry {
	if limit <= 0 {
		limit = 10
	}

	b.mu.Lock()
	sorted := make([]Entry, len(b.entries))
	copy(sorted, b.entries)
	b.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].RecordedAt.After(sorted[j].RecordedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Best returns the highest recorded score, 0 if the board is empty.
func (b *Board) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	best := 0
	for _, e := range b.entries {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}

// BestFor returns the highest score recorded for a player, 0 if none.
func (b *Board) BestFor(player string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	best := 0
	for _, e := range b.entries {
		if e.Player == player && e.Score > best {
			best = e.Score
		}
	}
	return best
}

// Len returns the number of recorded rounds.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Clear removes all entries.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}
