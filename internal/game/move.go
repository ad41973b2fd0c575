package game

import "fmt"

// Actions returns every empty cell in row-major order.
// Callers that break ties by first occurrence rely on this order.
func Actions(b Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if b[r][c] == None {
				actions = append(actions, Action{Row: r, Col: c})
			}
		}
	}
	return actions
}

// Result returns the board produced by the player to move marking the cell
// named by a. The given board is left untouched.
func Result(b Board, a Action) (Board, error) {
	if !a.InBounds() {
		return Board{}, fmt.Errorf("%w: %s is outside the board", ErrInvalidMove, a)
	}
	if b[a.Row][a.Col] != None {
		return Board{}, fmt.Errorf("%w: cell %s already occupied", ErrInvalidMove, a)
	}

	next := b
	next[a.Row][a.Col] = Player(b)
	return next, nil
}
