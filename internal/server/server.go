// Package server exposes the conversation engine over HTTP: the messaging
// channel posts inbound utterances to a webhook and receives the reply text.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshmart/grocery-bot/internal/engine"
	"github.com/freshmart/grocery-bot/internal/service"
	"github.com/freshmart/grocery-bot/internal/storage"
)

// Config holds HTTP server settings.
type Config struct {
	Addr      string
	RateLimit string
}

// DefaultConfig returns defaults matching the shop's existing deployment.
func DefaultConfig() Config {
	return Config{
		Addr:      ":3000",
		RateLimit: "60-M",
	}
}

// Server wires the engine and the local order log into a gin router.
type Server struct {
	engine   *engine.Engine
	orderLog *storage.OrderLog
	logger   *slog.Logger
	router   *gin.Engine
	config   Config
}

// webhookRequest is one inbound channel message.
type webhookRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	SenderName string `json:"sender_name"`
	Text       string `json:"text"`
	Type       string `json:"type"`
}

// New creates the HTTP server. orderLog may be nil; the orders listing
// endpoint then reports it as unavailable.
func New(eng *engine.Engine, orderLog *storage.OrderLog, cfg Config, logger *slog.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	limit, err := RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:   eng,
		orderLog: orderLog,
		logger:   logger,
		router:   router,
		config:   cfg,
	}

	router.GET("/healthz", s.handleHealth)
	router.POST("/webhook", limit, s.handleWebhook)
	router.GET("/api/orders", s.handleOrders)

	return s, nil
}

// Router exposes the gin handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("webhook server listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"catalog": s.engine.CatalogAvailable(),
	})
}

func (s *Server) handleWebhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender_id is required"})
		return
	}

	reply := s.engine.HandleMessage(c.Request.Context(), service.InboundMessage{
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		Text:       req.Text,
		Type:       req.Type,
	})

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (s *Server) handleOrders(c *gin.Context) {
	if s.orderLog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "order log not configured"})
		return
	}

	orders, err := s.orderLog.ListOrders(c.Request.Context(), 100)
	if err != nil {
		s.logger.Error("failed to list orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
