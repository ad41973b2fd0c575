package server

import (
	"log/slog"
	"net/http"
	"time"

	"ctchen222/tictactoe-minimax/internal/api/controller"
	"ctchen222/tictactoe-minimax/internal/api/response"
	appvalidator "ctchen222/tictactoe-minimax/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	engine          *gin.Engine
	boardController *controller.BoardController
}

// NewServer builds the gin engine and registers every route.
func NewServer(boardController *controller.BoardController) *Server {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := appvalidator.RegisterValidations(v); err != nil {
			slog.Error("failed to register request validations", "error", err)
		}
	}

	s := &Server{
		engine:          gin.New(),
		boardController: boardController,
	}
	s.engine.Use(gin.Recovery(), requestID(), requestLogger())
	s.RegisterHandlers()
	return s
}

func (s *Server) RegisterHandlers() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1/board")
	v1.GET("/initial", s.boardController.Initial)
	v1.POST("/state", s.boardController.State)
	v1.POST("/result", s.boardController.Result)
	v1.POST("/minimax", s.boardController.Minimax)
}

// Engine exposes the underlying http.Handler.
func (s *Server) Engine() http.Handler {
	return s.engine
}

// requestID propagates the caller's request ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"request.id", c.GetString(response.RequestIDKey),
			"elapsed", time.Since(start),
		)
	}
}
