package bot

import (
	"math/rand/v2"

	"ctchen222/tictactoe-minimax/internal/game"
)

// Difficulty selects how strongly the bot plays.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a request value to a Difficulty, defaulting to Hard.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case Easy, Medium:
		return Difficulty(s)
	default:
		return Hard
	}
}

// BotMoveCalculator implements the service's MoveCalculator interface.
type BotMoveCalculator struct{}

// CalculateNextMove calls the package-level function to satisfy the interface.
func (c *BotMoveCalculator) CalculateNextMove(board game.Board, mark game.PlayerMark, difficulty Difficulty) (row, col int) {
	return CalculateNextMove(board, mark, difficulty)
}

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// It returns (-1, -1) when no move is left.
func CalculateNextMove(board game.Board, botMark game.PlayerMark, difficulty Difficulty) (row, col int) {
	switch difficulty {
	case Easy:
		return easyMove(board)
	case Medium:
		return mediumMove(board, botMark)
	default:
		return hardMove(board)
	}
}

// easyMove makes a completely random move.
func easyMove(board game.Board) (row, col int) {
	available := game.Actions(board)
	if len(available) == 0 {
		return -1, -1
	}

	a := available[rand.IntN(len(available))]
	return a.Row, a.Col
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, botMark game.PlayerMark) (row, col int) {
	// 1. Win
	if r, c, ok := findWinningMove(board, botMark); ok {
		return r, c
	}

	// 2. Block
	if r, c, ok := findWinningMove(board, game.Opponent(botMark)); ok {
		return r, c
	}

	// 3. Random
	return easyMove(board)
}

// hardMove plays the minimax move for the player to move.
func hardMove(board game.Board) (row, col int) {
	a, ok := Minimax(board)
	if !ok {
		return -1, -1
	}
	return a.Row, a.Col
}

// findWinningMove returns the first empty cell, in row-major order, that
// completes a line for mark.
func findWinningMove(board game.Board, mark game.PlayerMark) (row, col int, found bool) {
	for _, a := range game.Actions(board) {
		next := board
		next[a.Row][a.Col] = mark
		if game.Winner(next) == mark {
			return a.Row, a.Col, true
		}
	}
	return -1, -1, false
}
