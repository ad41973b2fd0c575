package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	Size = BorderMax + 1
)

// ErrInvalidMove is returned when an action does not name an empty cell on the board.
var ErrInvalidMove = errors.New("invalid move")

// Board is a 3x3 grid indexed as Board[row][col].
// It is a value type: assigning or passing a Board copies every cell.
type Board [Size][Size]PlayerMark

// Action identifies a cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

// InBounds reports whether the action falls inside the grid.
func (a Action) InBounds() bool {
	return a.Row >= BorderMin && a.Row <= BorderMax && a.Col >= BorderMin && a.Col <= BorderMax
}

// lines lists every winning line: rows top to bottom, columns left to right,
// then the main diagonal and the anti-diagonal.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitialState returns an empty board.
func InitialState() Board {
	return Board{}
}

// Player returns the mark that moves next. X always moves first, so O is
// to move exactly when X has placed more marks. The board is not validated.
func Player(b Board) PlayerMark {
	var numX, numO int
	for r := range Size {
		for c := range Size {
			switch b[r][c] {
			case PlayerX:
				numX++
			case PlayerO:
				numO++
			}
		}
	}

	if numX > numO {
		return PlayerO
	}
	return PlayerX
}

// Winner returns the mark occupying a complete line, or None.
func Winner(b Board) PlayerMark {
	for _, line := range lines {
		first := b[line[0].Row][line[0].Col]
		if first == None {
			continue
		}
		if first == b[line[1].Row][line[1].Col] && first == b[line[2].Row][line[2].Col] {
			return first
		}
	}
	return None
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(b Board) bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}

// Terminal reports whether the game is over.
func Terminal(b Board) bool {
	return Winner(b) != None || IsBoardFull(b)
}

// Utility returns 1 if X has won, -1 if O has won and 0 otherwise.
// It is only meaningful for terminal boards.
func Utility(b Board) int {
	switch Winner(b) {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
