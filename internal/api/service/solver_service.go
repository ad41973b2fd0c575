package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/tictactoe-minimax/internal/api/models"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("service.solver")

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(board game.Board, mark game.PlayerMark, difficulty bot.Difficulty) (row, col int)
}

// BoardSearcher runs an exhaustive minimax search.
type BoardSearcher interface {
	Search(ctx context.Context, board game.Board) (bot.SearchResult, error)
}

// SolverService defines the interface for board queries and move selection.
type SolverService interface {
	InitialState(ctx context.Context) *models.BoardResponse
	Describe(ctx context.Context, board game.Board) *models.StateResponse
	Apply(ctx context.Context, board game.Board, action game.Action) (*models.BoardResponse, error)
	NextMove(ctx context.Context, board game.Board, difficulty bot.Difficulty) (*models.MoveResponse, error)
}

type solverService struct {
	searcher   BoardSearcher
	calculator MoveCalculator
	cache      repository.MoveCache
	timeout    time.Duration
}

// NewSolverService creates a new SolverService. cache may be nil, and a zero
// timeout leaves searches bounded only by the caller's context.
func NewSolverService(searcher BoardSearcher, calculator MoveCalculator, cache repository.MoveCache, timeout time.Duration) SolverService {
	return &solverService{
		searcher:   searcher,
		calculator: calculator,
		cache:      cache,
		timeout:    timeout,
	}
}

// InitialState returns the empty starting board.
func (s *solverService) InitialState(ctx context.Context) *models.BoardResponse {
	return &models.BoardResponse{Board: game.InitialState().Rows()}
}

// Describe reports the turn, winner, terminal flag, utility and legal actions of a board.
func (s *solverService) Describe(ctx context.Context, board game.Board) *models.StateResponse {
	return &models.StateResponse{
		Board:    board.Rows(),
		Player:   game.Player(board),
		Winner:   game.Winner(board),
		Terminal: game.Terminal(board),
		Utility:  game.Utility(board),
		Actions:  game.Actions(board),
	}
}

// Apply returns the board that results from playing action.
func (s *solverService) Apply(ctx context.Context, board game.Board, action game.Action) (*models.BoardResponse, error) {
	next, err := game.Result(board, action)
	if err != nil {
		return nil, err
	}
	return &models.BoardResponse{Board: next.Rows()}, nil
}

// NextMove chooses a move for the player to move at the requested difficulty.
// Hard moves are served from the cache when possible.
func (s *solverService) NextMove(ctx context.Context, board game.Board, difficulty bot.Difficulty) (*models.MoveResponse, error) {
	ctx, span := tracer.Start(ctx, "SolverService.NextMove", trace.WithAttributes(
		attribute.String("board", board.Key()),
		attribute.String("difficulty", string(difficulty)),
	))
	defer span.End()

	mark := game.Player(board)
	resp := &models.MoveResponse{
		Player:     mark,
		Difficulty: string(difficulty),
	}

	if game.Terminal(board) {
		resp.Terminal = true
		return resp, nil
	}

	if difficulty != bot.Hard {
		row, col := s.calculator.CalculateNextMove(board, mark, difficulty)
		resp.Move = &game.Action{Row: row, Col: col}
		return resp, nil
	}

	if cached, ok := s.lookup(ctx, board); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		resp.Move = &cached.Action
		resp.Value = &cached.Value
		resp.Cached = true
		return resp, nil
	}

	searchCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.searcher.Search(searchCtx, board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Search failed")
		return nil, fmt.Errorf("search failed: %w", err)
	}

	s.store(ctx, board, repository.CachedMove{Action: result.Action, Value: result.Value})

	resp.Move = &result.Action
	resp.Value = &result.Value
	return resp, nil
}

func (s *solverService) lookup(ctx context.Context, board game.Board) (*repository.CachedMove, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, err := s.cache.Get(ctx, board)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			slog.WarnContext(ctx, "move cache lookup failed", "board", board.Key(), "error", err)
		}
		return nil, false
	}
	return cached, true
}

func (s *solverService) store(ctx context.Context, board game.Board, move repository.CachedMove) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, board, move); err != nil {
		slog.WarnContext(ctx, "failed to cache move", "board", board.Key(), "error", err)
	}
}
