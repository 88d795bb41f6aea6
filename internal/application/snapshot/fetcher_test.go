package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/updown/internal/domain"
)

const (
	currentSlug  = "btc-updown-15m-1700000100"
	previousSlug = "btc-updown-15m-1699999200"
)

// fakeMarkets devuelve snapshots fijos por slug y registra las consultas.
type fakeMarkets struct {
	snaps   map[string]domain.MarketSnapshot
	errs    map[string]error
	queried []string
}

func (f *fakeMarkets) FetchMarketBySlug(_ context.Context, slug string) (domain.MarketSnapshot, error) {
	f.queried = append(f.queried, slug)
	if err, ok := f.errs[slug]; ok {
		return domain.MarketSnapshot{}, err
	}
	if snap, ok := f.snaps[slug]; ok {
		return snap, nil
	}
	return domain.MarketSnapshot{}, domain.ErrNoActiveMarket
}

// fixedClock congela el reloj dentro de la ventana 1700000100.
func fixedClock() time.Time {
	return time.Unix(1700000123, 0).UTC()
}

func TestCurrent_ActiveWindow(t *testing.T) {
	markets := &fakeMarkets{snaps: map[string]domain.MarketSnapshot{
		currentSlug: {Slug: currentSlug, AcceptingOrders: true},
	}}
	f := NewWithClock(markets, fixedClock)

	snap, err := f.Current(context.Background(), "btc")
	require.NoError(t, err)

	// floor(1700000123 / 900) · 900 = 1700000100
	assert.Equal(t, currentSlug, snap.Slug)
	assert.Equal(t, []string{currentSlug}, markets.queried)
}

func TestCurrent_FallsBackToPreviousWindow(t *testing.T) {
	markets := &fakeMarkets{snaps: map[string]domain.MarketSnapshot{
		previousSlug: {Slug: previousSlug, AcceptingOrders: false},
	}}
	f := NewWithClock(markets, fixedClock)

	snap, err := f.Current(context.Background(), "btc")
	require.NoError(t, err)

	assert.Equal(t, previousSlug, snap.Slug)
	assert.Equal(t, []string{currentSlug, previousSlug}, markets.queried)
}

func TestCurrent_NotAcceptingTriggersFallback(t *testing.T) {
	markets := &fakeMarkets{snaps: map[string]domain.MarketSnapshot{
		currentSlug:  {Slug: currentSlug, AcceptingOrders: false},
		previousSlug: {Slug: previousSlug, AcceptingOrders: false},
	}}
	f := NewWithClock(markets, fixedClock)

	// La ventana recién cerrada se devuelve aunque ya no acepte órdenes
	snap, err := f.Current(context.Background(), "btc")
	require.NoError(t, err)
	assert.Equal(t, previousSlug, snap.Slug)
}

func TestCurrent_NoActiveMarket(t *testing.T) {
	f := NewWithClock(&fakeMarkets{}, fixedClock)

	_, err := f.Current(context.Background(), "btc")

	// Ausencia de mercado, no fallo de transporte
	assert.ErrorIs(t, err, domain.ErrNoActiveMarket)
}

func TestCurrent_TransportErrorPropagates(t *testing.T) {
	upstream := errors.New("status 500: boom")
	markets := &fakeMarkets{errs: map[string]error{
		currentSlug: upstream,
	}}
	f := NewWithClock(markets, fixedClock)

	_, err := f.Current(context.Background(), "btc")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, domain.ErrNoActiveMarket)
	// Sin reintento: el error de red es terminal
	assert.Len(t, markets.queried, 1)
}
