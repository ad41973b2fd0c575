package bot

import "ctchen222/tictactoe-minimax/internal/game"

// Sentinels outside the utility range {-1, 0, 1}.
const (
	negInf = -2
	posInf = 2
)

// Minimax returns the optimal action for the player to move, assuming both
// sides play perfectly from here on. It returns false if the board is terminal.
//
// Among equally valued actions the first one in row-major order is chosen.
func Minimax(b game.Board) (game.Action, bool) {
	if game.Terminal(b) {
		return game.Action{}, false
	}

	mark := game.Player(b)
	actions := game.Actions(b)
	values := make([]int, len(actions))
	for i, a := range actions {
		next := successor(b, a)
		if mark == game.PlayerX {
			values[i] = minValue(next)
		} else {
			values[i] = maxValue(next)
		}
	}

	return actions[bestIndex(mark, values)], true
}

func maxValue(b game.Board) int {
	if game.Terminal(b) {
		return game.Utility(b)
	}

	v := negInf
	for _, a := range game.Actions(b) {
		v = max(v, minValue(successor(b, a)))
	}
	return v
}

func minValue(b game.Board) int {
	if game.Terminal(b) {
		return game.Utility(b)
	}

	v := posInf
	for _, a := range game.Actions(b) {
		v = min(v, maxValue(successor(b, a)))
	}
	return v
}

// successor applies an action taken from game.Actions on the same board,
// which game.Result always accepts.
func successor(b game.Board, a game.Action) game.Board {
	next, err := game.Result(b, a)
	if err != nil {
		panic(err)
	}
	return next
}

// bestIndex returns the index of the first maximum for X or the first minimum for O.
func bestIndex(mark game.PlayerMark, values []int) int {
	best := 0
	for i, v := range values {
		if mark == game.PlayerX && v > values[best] {
			best = i
		}
		if mark == game.PlayerO && v < values[best] {
			best = i
		}
	}
	return best
}
