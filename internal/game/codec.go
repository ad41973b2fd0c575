package game

import (
	"fmt"
	"strings"
)

// BoardFromRows converts a dynamic slice of rows into a Board.
// It fails if the input is not exactly 3x3 or holds an unknown mark.
func BoardFromRows(rows [][]PlayerMark) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("board must have %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("row %d must have %d cells, got %d", r, Size, len(row))
		}
		for c, cell := range row {
			if !cell.Valid() {
				return b, fmt.Errorf("unknown mark %q at (%d, %d)", cell, r, c)
			}
			b[r][c] = cell
		}
	}
	return b, nil
}

// Rows converts the board to a dynamic slice of slices.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, Size)
	for r := range Size {
		rows[r] = make([]PlayerMark, Size)
		copy(rows[r], b[r][:])
	}
	return rows
}

// Key encodes the board as nine characters in row-major order, '.' for empty cells.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := range Size {
		for c := range Size {
			if b[r][c] == None {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(b[r][c]))
			}
		}
	}
	return sb.String()
}

// Valid reports whether the mark is X, O or empty.
func (m PlayerMark) Valid() bool {
	return m == None || m == PlayerX || m == PlayerO
}
