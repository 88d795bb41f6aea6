package ports

import (
	"context"

	"github.com/alejandrodnm/updown/internal/domain"
)

// MarketProvider obtiene snapshots de mercados desde la Gamma API.
type MarketProvider interface {
	// FetchMarketBySlug devuelve el snapshot del mercado con el slug dado.
	// Los campos string-encoded de la API llegan ya normalizados a valores
	// tipados. Devuelve domain.ErrNoActiveMarket si el slug no existe.
	FetchMarketBySlug(ctx context.Context, slug string) (domain.MarketSnapshot, error)
}
