package polymarket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/updown/internal/domain"
)

func TestFetchPositions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/positions", r.URL.Path)
		assert.Equal(t, "0xabc", r.URL.Query().Get("user"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title": "Bitcoin Up or Down", "outcome": "Up", "size": "10.5", "avgPrice": "0.42", "curPrice": 0.55, "redeemable": false},
			{"title": "Bitcoin Up or Down", "outcome": "Down", "size": 3, "avgPrice": 0.3, "curPrice": 0.45, "redeemable": true}
		]`))
	}))
	defer server.Close()

	c := NewClient("", server.URL, "")
	positions, err := c.FetchPositions(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "Up", positions[0].Outcome)
	assert.InDelta(t, 10.5, positions[0].Size, 1e-9)
	assert.InDelta(t, 0.42, positions[0].AvgPrice, 1e-9)
	assert.InDelta(t, 0.55, positions[0].CurPrice, 1e-9)
	assert.True(t, positions[1].Redeemable)
}

func TestFetchActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity", r.URL.Path)
		assert.Equal(t, "0xabc", r.URL.Query().Get("user"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"type": "TRADE", "side": "BUY", "outcome": "Up", "price": "0.55", "size": "10", "usdcSize": "5.5", "timestamp": 1700000150, "slug": "btc-updown-15m-1700000100", "title": "Bitcoin Up or Down"},
			{"type": "REDEEM", "usdcSize": "3.0", "timestamp": 1700000950, "slug": "btc-updown-15m-1700000100"}
		]`))
	}))
	defer server.Close()

	c := NewClient("", server.URL, "")
	records, err := c.FetchActivity(context.Background(), "0xabc", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, domain.ActivityTrade, first.Type)
	assert.True(t, first.IsTrade())
	assert.Equal(t, domain.SideBuy, first.Side)
	assert.InDelta(t, 0.55, first.Price, 1e-9)
	assert.InDelta(t, 5.5, first.USDCSize, 1e-9)
	assert.Equal(t, time.Unix(1700000150, 0).UTC(), first.Timestamp)

	assert.False(t, records[1].IsTrade())
}

func TestFetchActivity_ExplicitLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "250", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient("", server.URL, "")
	records, err := c.FetchActivity(context.Background(), "0xabc", 250)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseActivityTimestamp(t *testing.T) {
	// Segundos
	got := parseActivityTimestamp(json.Number("1700000150"))
	assert.Equal(t, time.Unix(1700000150, 0).UTC(), got)

	// Milisegundos
	got = parseActivityTimestamp(json.Number("1700000150500"))
	assert.Equal(t, time.Unix(1700000150, 500*int64(time.Millisecond)).UTC(), got)

	// Float
	got = parseActivityTimestamp(json.Number("1700000150.5"))
	assert.Equal(t, int64(1700000150), got.Unix())

	// Basura → zero value
	got = parseActivityTimestamp(json.Number("not-a-number"))
	assert.True(t, got.IsZero())
}
