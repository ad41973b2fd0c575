package bot

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"ctchen222/tictactoe-minimax/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// cancelCheckInterval is how many nodes are expanded between context checks.
const cancelCheckInterval = 1024

// SearchResult is the outcome of a full minimax search.
type SearchResult struct {
	Action   game.Action
	Value    int   // minimax value of the board from X's perspective
	Terminal bool  // the board was already over; Action is unset
	Nodes    int64 // boards visited below the root, excluding transposition hits
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTable memoizes subtree values in t. Values are exact, so the table
// never changes which action is chosen.
func WithTable(t TranspositionTable) Option {
	return func(s *Searcher) {
		s.table = t
	}
}

// WithParallelRoot evaluates the root actions concurrently.
func WithParallelRoot(enabled bool) Option {
	return func(s *Searcher) {
		s.parallel = enabled
	}
}

// Searcher runs minimax searches with optional memoization and root parallelism.
// It produces the same action as Minimax for every board.
type Searcher struct {
	table    TranspositionTable
	parallel bool

	nodeCounter metric.Int64Counter
	durations   metric.Float64Histogram
}

// NewSearcher creates a Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	s.nodeCounter, err = meter.Int64Counter("bot.search.nodes",
		metric.WithDescription("Boards expanded by minimax searches"))
	if err != nil {
		slog.Warn("failed to create search node counter", "error", err)
		s.nodeCounter = noop.Int64Counter{}
	}
	s.durations, err = meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Wall time of minimax searches"),
		metric.WithUnit("ms"))
	if err != nil {
		slog.Warn("failed to create search duration histogram", "error", err)
		s.durations = noop.Float64Histogram{}
	}

	return s
}

// Search returns the optimal action for the player to move on b.
// It only fails if ctx is done before the search completes.
func (s *Searcher) Search(ctx context.Context, b game.Board) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "bot.Search", trace.WithAttributes(
		attribute.String("board", b.Key()),
		attribute.Bool("search.parallel", s.parallel),
	))
	defer span.End()

	if game.Terminal(b) {
		span.SetAttributes(attribute.Bool("search.terminal", true))
		return SearchResult{Value: game.Utility(b), Terminal: true}, nil
	}

	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	start := time.Now()
	mark := game.Player(b)
	actions := game.Actions(b)
	values := make([]int, len(actions))
	var nodes atomic.Int64

	evaluate := func(ctx context.Context, i int) error {
		w := &walker{ctx: ctx, table: s.table}
		next := successor(b, actions[i])

		var err error
		if mark == game.PlayerX {
			values[i], err = w.minValue(next)
		} else {
			values[i], err = w.maxValue(next)
		}
		nodes.Add(w.nodes)
		return err
	}

	var err error
	if s.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := range actions {
			g.Go(func() error {
				return evaluate(gctx, i)
			})
		}
		err = g.Wait()
	} else {
		for i := range actions {
			if err = evaluate(ctx, i); err != nil {
				break
			}
		}
	}

	attrs := metric.WithAttributes(attribute.String("player", string(mark)))
	s.nodeCounter.Add(ctx, nodes.Load(), attrs)
	s.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Search aborted")
		return SearchResult{}, err
	}

	best := bestIndex(mark, values)
	result := SearchResult{
		Action: actions[best],
		Value:  values[best],
		Nodes:  nodes.Load(),
	}
	span.SetAttributes(
		attribute.Int("search.row", result.Action.Row),
		attribute.Int("search.col", result.Action.Col),
		attribute.Int("search.value", result.Value),
		attribute.Int64("search.nodes", result.Nodes),
	)
	slog.DebugContext(ctx, "minimax search finished",
		"player", mark, "action", result.Action.String(), "value", result.Value,
		"nodes", result.Nodes, "elapsed", time.Since(start))

	return result, nil
}

// walker carries per-goroutine search state.
type walker struct {
	ctx   context.Context
	table TranspositionTable
	nodes int64
}

func (w *walker) visit(b game.Board) (int, bool, error) {
	w.nodes++
	if w.nodes%cancelCheckInterval == 0 {
		if err := w.ctx.Err(); err != nil {
			return 0, false, err
		}
	}
	if game.Terminal(b) {
		return game.Utility(b), true, nil
	}
	if w.table != nil {
		if v, ok := w.table.Get(b); ok {
			w.nodes--
			return v, true, nil
		}
	}
	return 0, false, nil
}

func (w *walker) maxValue(b game.Board) (int, error) {
	if v, done, err := w.visit(b); done || err != nil {
		return v, err
	}

	v := negInf
	for _, a := range game.Actions(b) {
		child, err := w.minValue(successor(b, a))
		if err != nil {
			return 0, err
		}
		v = max(v, child)
	}

	if w.table != nil {
		w.table.Put(b, v)
	}
	return v, nil
}

func (w *walker) minValue(b game.Board) (int, error) {
	if v, done, err := w.visit(b); done || err != nil {
		return v, err
	}

	v := posInf
	for _, a := range game.Actions(b) {
		child, err := w.maxValue(successor(b, a))
		if err != nil {
			return 0, err
		}
		v = min(v, child)
	}

	if w.table != nil {
		w.table.Put(b, v)
	}
	return v, nil
}
