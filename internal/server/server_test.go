package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-bot/internal/catalog"
	"github.com/freshmart/grocery-bot/internal/engine"
	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/sheets"
	"github.com/freshmart/grocery-bot/internal/storage"
)

func newTestServer(t *testing.T, orderLog *storage.OrderLog) *Server {
	t.Helper()
	logger := slog.Default()

	store := catalog.NewStore(catalog.BuiltinSource{}, logger)
	require.NoError(t, store.Load(context.Background()))

	eng := engine.New(store, &sheets.MockSink{}, nil, engine.DefaultConfig(), logger)

	srv, err := New(eng, orderLog, DefaultConfig(), logger)
	require.NoError(t, err)
	return srv
}

func postWebhook(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestWebhookReturnsReply(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postWebhook(t, srv, map[string]string{
		"sender_id":   "911234567890@c.us",
		"sender_name": "Test Customer",
		"text":        "start",
		"type":        "text",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "Select a Category")
}

func TestWebhookNonTextMessageGetsEmptyReply(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postWebhook(t, srv, map[string]string{
		"sender_id": "911234567890@c.us",
		"text":      "start",
		"type":      "image",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Reply)
}

func TestWebhookRequiresSenderID(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postWebhook(t, srv, map[string]string{"text": "start"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "sender_id is required")
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthReportsCatalogState(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Catalog bool   `json:"catalog"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Catalog)
}

func TestOrdersEndpointWithoutLogIsUnavailable(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOrdersEndpointListsLoggedOrders(t *testing.T) {
	orderLog, err := storage.NewOrderLog(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = orderLog.Close() })

	require.NoError(t, orderLog.PersistOrder(context.Background(), &model.Order{
		OrderID:       "ORD1700000000000",
		CustomerName:  "Test Customer",
		CustomerPhone: "911234567890",
		ItemsSummary:  "Fresh Milk x2 1L",
		Status:        model.OrderStatusPending,
		TotalAmount:   decimal.NewFromInt(110),
		CreatedAt:     time.Now(),
	}))

	srv := newTestServer(t, orderLog)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []model.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "ORD1700000000000", resp.Orders[0].OrderID)
}

func TestRateLimitRejectsBadFormat(t *testing.T) {
	logger := slog.Default()
	store := catalog.NewStore(catalog.BuiltinSource{}, logger)
	require.NoError(t, store.Load(context.Background()))
	eng := engine.New(store, &sheets.MockSink{}, nil, engine.DefaultConfig(), logger)

	cfg := DefaultConfig()
	cfg.RateLimit = "not-a-rate"
	_, err := New(eng, nil, cfg, logger)
	assert.Error(t, err)
}
