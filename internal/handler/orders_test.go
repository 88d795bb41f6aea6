package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/updown/internal/application/orders"
	"github.com/alejandrodnm/updown/internal/domain"
)

func TestOrdersCalculate(t *testing.T) {
	markets := &fakeMarkets{snaps: map[string]domain.MarketSnapshot{
		"btc-updown-15m-1700000100": btcSnapshot(),
	}}
	r := newRouter()
	h := &OrdersHandler{
		Fetcher: testFetcher(markets),
		Engine:  orders.New(orders.DefaultConfig(), nil),
	}
	h.Register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/calculate", strings.NewReader(`{"size": 25}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	out := w.Body.String()
	assert.Contains(t, out, `"success":true`)
	// Down (0.38) es el lado barato: BUY Down y SELL Up
	assert.Contains(t, out, `"BUY"`)
	assert.Contains(t, out, `"SELL"`)
	assert.Contains(t, out, "0.3857")
	assert.Contains(t, out, "0.6107")
}

func TestOrdersCalculate_NoActiveMarket(t *testing.T) {
	r := newRouter()
	h := &OrdersHandler{
		Fetcher: testFetcher(&fakeMarkets{}),
		Engine:  orders.New(orders.DefaultConfig(), nil),
	}
	h.Register(r)

	w, body := doRequest(r, http.MethodPost, "/api/orders/calculate")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No active market", body["error"])
}

func TestOrdersPlace_NoExecutor(t *testing.T) {
	markets := &fakeMarkets{snaps: map[string]domain.MarketSnapshot{
		"btc-updown-15m-1700000100": btcSnapshot(),
	}}
	r := newRouter()
	h := &OrdersHandler{
		Fetcher: testFetcher(markets),
		Engine:  orders.New(orders.DefaultConfig(), nil),
	}
	h.Register(r)

	w, body := doRequest(r, http.MethodPost, "/api/orders/place")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "trading client not available", body["summary"])
}
