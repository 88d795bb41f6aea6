package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/updown/internal/domain"
	"github.com/alejandrodnm/updown/internal/ports"
)

// Fetcher deriva el mercado up/down activo de un coin a partir de la
// hora actual. Stateless: cada llamada resuelve la ventana desde cero.
type Fetcher struct {
	markets ports.MarketProvider
	now     func() time.Time
}

// New crea un Fetcher que usa el reloj de sistema.
func New(markets ports.MarketProvider) *Fetcher {
	return &Fetcher{markets: markets, now: time.Now}
}

// NewWithClock crea un Fetcher con un reloj inyectado, para tests.
func NewWithClock(markets ports.MarketProvider, now func() time.Time) *Fetcher {
	return &Fetcher{markets: markets, now: now}
}

// Current devuelve el snapshot del mercado de 15 minutos activo del coin.
// Si la ventana actual no existe o ya no acepta órdenes, reintenta una
// única vez contra la ventana anterior. Devuelve domain.ErrNoActiveMarket
// cuando ninguna de las dos ventanas tiene mercado; los errores de
// transporte se propagan tal cual.
func (f *Fetcher) Current(ctx context.Context, coin string) (domain.MarketSnapshot, error) {
	window := domain.WindowStart(f.now())
	slug := domain.MarketSlug(coin, window)

	snap, err := f.markets.FetchMarketBySlug(ctx, slug)
	if err == nil && snap.AcceptingOrders {
		return snap, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNoActiveMarket) {
		return domain.MarketSnapshot{}, fmt.Errorf("snapshot.Current %s: %w", coin, err)
	}

	// La ventana recién cerrada sigue siendo útil para consultar precios
	// y posiciones aunque ya no acepte órdenes.
	prevSlug := domain.MarketSlug(coin, window-domain.WindowSeconds)
	slog.Debug("falling back to previous window", "coin", coin, "slug", prevSlug)

	snap, err = f.markets.FetchMarketBySlug(ctx, prevSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveMarket) {
			return domain.MarketSnapshot{}, domain.ErrNoActiveMarket
		}
		return domain.MarketSnapshot{}, fmt.Errorf("snapshot.Current %s: %w", coin, err)
	}
	return snap, nil
}
