package models

import "ctchen222/tictactoe-minimax/internal/game"

// BoardRequest carries a board in row-major order.
type BoardRequest struct {
	Board [][]game.PlayerMark `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
}

// ResultRequest asks for the board produced by applying Action.
type ResultRequest struct {
	Board  [][]game.PlayerMark `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
	Action *game.Action        `json:"action" binding:"required"`
}

// MinimaxRequest asks for the next move at the given difficulty (hard when empty).
type MinimaxRequest struct {
	Board      [][]game.PlayerMark `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
	Difficulty string              `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// BoardResponse wraps a single board.
type BoardResponse struct {
	Board [][]game.PlayerMark `json:"board"`
}

// StateResponse describes a board: whose turn it is, whether the game is over and the legal moves.
type StateResponse struct {
	Board    [][]game.PlayerMark `json:"board"`
	Player   game.PlayerMark     `json:"player"`
	Winner   game.PlayerMark     `json:"winner"`
	Terminal bool                `json:"terminal"`
	Utility  int                 `json:"utility"`
	Actions  []game.Action       `json:"actions"`
}

// MoveResponse is the chosen move. Move is nil when the game is already over;
// Value is only set for hard searches.
type MoveResponse struct {
	Move       *game.Action    `json:"move"`
	Player     game.PlayerMark `json:"player"`
	Value      *int            `json:"value,omitempty"`
	Terminal   bool            `json:"terminal"`
	Cached     bool            `json:"cached"`
	Difficulty string          `json:"difficulty"`
}
