package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/tictactoe-minimax/internal/api/models"
	"ctchen222/tictactoe-minimax/internal/api/response"
	"ctchen222/tictactoe-minimax/internal/api/service"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/gin-gonic/gin"
)

// BoardController handles board-related HTTP requests.
type BoardController struct {
	solverService service.SolverService
}

// NewBoardController creates a new BoardController.
func NewBoardController(solverService service.SolverService) *BoardController {
	return &BoardController{
		solverService: solverService,
	}
}

// Initial handles the initial board endpoint.
func (bc *BoardController) Initial(c *gin.Context) {
	response.SuccessResponse(c, bc.solverService.InitialState(c.Request.Context()))
}

// State handles the board description endpoint.
func (bc *BoardController) State(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, err := game.BoardFromRows(req.Board)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response.SuccessResponse(c, bc.solverService.Describe(c.Request.Context(), board))
}

// Result handles the move application endpoint.
func (bc *BoardController) Result(c *gin.Context) {
	var req models.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, err := game.BoardFromRows(req.Board)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	next, err := bc.solverService.Apply(c.Request.Context(), board, *req.Action)
	if err != nil {
		if errors.Is(err, game.ErrInvalidMove) {
			response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, next)
}

// Minimax handles the next move endpoint.
func (bc *BoardController) Minimax(c *gin.Context) {
	var req models.MinimaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, err := game.BoardFromRows(req.Board)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	move, err := bc.solverService.NextMove(ctx, board, bot.ParseDifficulty(req.Difficulty))
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute next move", "board", board.Key(), "error", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			response.ErrorResponse(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, move)
}
