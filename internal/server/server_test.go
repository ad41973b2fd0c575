package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ctchen222/tictactoe-minimax/internal/api/controller"
	"ctchen222/tictactoe-minimax/internal/api/service"
	"ctchen222/tictactoe-minimax/internal/bot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Code      int             `json:"code"`
	RequestID string          `json:"request_id"`
	Extras    json.RawMessage `json:"extras"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	searcher := bot.NewSearcher(bot.WithTable(bot.NewMemoryTable()))
	svc := service.NewSolverService(searcher, &bot.BotMoveCalculator{}, nil, 5*time.Second)
	return NewServer(controller.NewBoardController(svc)).Engine()
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealthz(t *testing.T) {
	rec, env := do(t, newTestServer(t), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, rec.Header().Get("X-Request-ID"))
}

func TestInitial(t *testing.T) {
	rec, env := do(t, newTestServer(t), http.MethodGet, "/api/v1/board/initial", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Board [][]string `json:"board"`
	}
	require.NoError(t, json.Unmarshal(env.Extras, &got))
	assert.Equal(t, [][]string{{"", "", ""}, {"", "", ""}, {"", "", ""}}, got.Board)
}

func TestState(t *testing.T) {
	h := newTestServer(t)

	t.Run("Winning board", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/v1/board/state", gin.H{
			"board": [][]string{{"X", "X", "X"}, {"O", "O", ""}, {"", "", ""}},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Player   string `json:"player"`
			Winner   string `json:"winner"`
			Terminal bool   `json:"terminal"`
			Utility  int    `json:"utility"`
			Actions  []struct {
				Row int `json:"row"`
				Col int `json:"col"`
			} `json:"actions"`
		}
		require.NoError(t, json.Unmarshal(env.Extras, &got))
		assert.Equal(t, "O", got.Player)
		assert.Equal(t, "X", got.Winner)
		assert.True(t, got.Terminal)
		assert.Equal(t, 1, got.Utility)
		assert.Len(t, got.Actions, 4)
	})

	t.Run("Rejects malformed boards", func(t *testing.T) {
		bad := []any{
			gin.H{},
			gin.H{"board": [][]string{{"", "", ""}, {"", "", ""}}},
			gin.H{"board": [][]string{{"", ""}, {"", "", ""}, {"", "", ""}}},
			gin.H{"board": [][]string{{"Q", "", ""}, {"", "", ""}, {"", "", ""}}},
		}
		for _, body := range bad {
			rec, env := do(t, h, http.MethodPost, "/api/v1/board/state", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
		}
	})
}

func TestResult(t *testing.T) {
	h := newTestServer(t)
	board := [][]string{{"X", "", ""}, {"", "", ""}, {"", "", ""}}

	t.Run("Applies the move for the player to move", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/v1/board/result", gin.H{
			"board":  board,
			"action": gin.H{"row": 1, "col": 1},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Board [][]string `json:"board"`
		}
		require.NoError(t, json.Unmarshal(env.Extras, &got))
		assert.Equal(t, "O", got.Board[1][1])
		assert.Equal(t, "X", got.Board[0][0])
	})

	t.Run("Occupied cell is an invalid move", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodPost, "/api/v1/board/result", gin.H{
			"board":  board,
			"action": gin.H{"row": 0, "col": 0},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Out of range cell is an invalid move", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodPost, "/api/v1/board/result", gin.H{
			"board":  board,
			"action": gin.H{"row": 3, "col": 0},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Missing action", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodPost, "/api/v1/board/result", gin.H{"board": board})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMinimax(t *testing.T) {
	h := newTestServer(t)

	type moveResponse struct {
		Move *struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"move"`
		Player   string `json:"player"`
		Value    *int   `json:"value"`
		Terminal bool   `json:"terminal"`
	}

	t.Run("Blocks the open diagonal", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/v1/board/minimax", gin.H{
			"board": [][]string{{"O", "X", "O"}, {"X", "O", ""}, {"X", "O", ""}},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got moveResponse
		require.NoError(t, json.Unmarshal(env.Extras, &got))
		require.NotNil(t, got.Move)
		assert.Equal(t, 2, got.Move.Row)
		assert.Equal(t, 2, got.Move.Col)
		assert.Equal(t, "X", got.Player)
		require.NotNil(t, got.Value)
		assert.Equal(t, 0, *got.Value)
	})

	t.Run("Terminal board returns no move", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/v1/board/minimax", gin.H{
			"board": [][]string{{"X", "X", "X"}, {"O", "O", ""}, {"", "", ""}},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got moveResponse
		require.NoError(t, json.Unmarshal(env.Extras, &got))
		assert.Nil(t, got.Move)
		assert.True(t, got.Terminal)
	})

	t.Run("Easy returns an empty cell", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/v1/board/minimax", gin.H{
			"board":      [][]string{{"X", "O", "X"}, {"O", "X", "O"}, {"O", "X", ""}},
			"difficulty": "easy",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got moveResponse
		require.NoError(t, json.Unmarshal(env.Extras, &got))
		require.NotNil(t, got.Move)
		assert.Equal(t, 2, got.Move.Row)
		assert.Equal(t, 2, got.Move.Col)
		assert.Nil(t, got.Value)
	})

	t.Run("Unknown difficulty is rejected", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodPost, "/api/v1/board/minimax", gin.H{
			"board":      [][]string{{"", "", ""}, {"", "", ""}, {"", "", ""}},
			"difficulty": "expert",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
