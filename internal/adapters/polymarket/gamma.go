package polymarket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/updown/internal/domain"
)

// FetchMarketBySlug obtiene el snapshot de un mercado por su slug canónico.
// Devuelve domain.ErrNoActiveMarket si el slug no existe en Gamma; el
// resto de fallos se propagan como errores de transporte.
func (c *Client) FetchMarketBySlug(ctx context.Context, slug string) (domain.MarketSnapshot, error) {
	url := fmt.Sprintf("%s/markets/slug/%s", c.gammaBase, slug)

	var raw gammaMarket
	if err := c.get(ctx, c.gammaLimiter, url, &raw); err != nil {
		if isNotFound(err) {
			slog.Debug("market slug not found", "slug", slug)
			return domain.MarketSnapshot{}, domain.ErrNoActiveMarket
		}
		return domain.MarketSnapshot{}, fmt.Errorf("gamma.FetchMarketBySlug %s: %w", slug, err)
	}

	return mapGammaMarket(raw)
}
