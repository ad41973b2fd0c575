package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.move_cache")

// ErrCacheMiss is returned when no answer is stored for a board.
var ErrCacheMiss = errors.New("move not cached")

// CachedMove is a stored minimax answer.
type CachedMove struct {
	Action game.Action `json:"action"`
	Value  int         `json:"value"`
}

//go:generate mockgen -source=move_cache.go -destination=mocks/mock_move_cache.go -package=mocks

// MoveCache defines the interface for storing minimax answers by board.
type MoveCache interface {
	Get(ctx context.Context, board game.Board) (*CachedMove, error)
	Set(ctx context.Context, board game.Board, move CachedMove) error
}

type redisMoveCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewMoveCache creates a new Redis-based MoveCache. A zero ttl keeps entries forever.
func NewMoveCache(rdb *redis.Client, ttl time.Duration) MoveCache {
	return &redisMoveCache{rdb: rdb, ttl: ttl}
}

func moveKey(board game.Board) string {
	return fmt.Sprintf("minimax:%s", board.Key())
}

// Get retrieves the answer stored for board, or ErrCacheMiss.
func (r *redisMoveCache) Get(ctx context.Context, board game.Board) (*CachedMove, error) {
	ctx, span := tracer.Start(ctx, "MoveCache.Get", trace.WithAttributes(
		attribute.String("board", board.Key()),
	))
	defer span.End()

	data, err := r.rdb.Get(ctx, moveKey(board)).Bytes()
	if errors.Is(err, redis.Nil) {
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get move from redis: %w", err)
	}

	var move CachedMove
	if err := json.Unmarshal(data, &move); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached move: %w", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return &move, nil
}

// Set stores the answer for board.
func (r *redisMoveCache) Set(ctx context.Context, board game.Board, move CachedMove) error {
	ctx, span := tracer.Start(ctx, "MoveCache.Set", trace.WithAttributes(
		attribute.String("board", board.Key()),
	))
	defer span.End()

	data, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("failed to marshal move: %w", err)
	}
	if err := r.rdb.Set(ctx, moveKey(board), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store move in redis: %w", err)
	}
	return nil
}
