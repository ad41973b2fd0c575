package bot

import (
	"sync"

	"ctchen222/tictactoe-minimax/internal/game"
)

// TranspositionTable caches exact minimax values by board.
// Implementations must be safe for concurrent use.
type TranspositionTable interface {
	Get(b game.Board) (int, bool)
	Put(b game.Board, value int)
	Len() int
}

// MemoryTable is an in-process TranspositionTable.
type MemoryTable struct {
	mu      sync.RWMutex
	entries map[game.Board]int
}

// NewMemoryTable creates an empty MemoryTable.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{entries: make(map[game.Board]int)}
}

func (t *MemoryTable) Get(b game.Board) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[b]
	return v, ok
}

func (t *MemoryTable) Put(b game.Board, value int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[b] = value
}

func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
