package polymarket

import (
	"time"

	"github.com/alejandrodnm/updown/internal/domain"
)

// mapGammaMarket convierte el DTO de Gamma a domain.MarketSnapshot.
// Un mercado sin los dos token IDs es dato malformado, no error de red.
func mapGammaMarket(raw gammaMarket) (domain.MarketSnapshot, error) {
	if len(raw.ClobTokenIDs) < 2 {
		return domain.MarketSnapshot{}, domain.ErrMissingTokenIDs
	}

	snap := domain.MarketSnapshot{
		Question:        raw.Question,
		Slug:            raw.Slug,
		UpTokenID:       raw.ClobTokenIDs[0],
		DownTokenID:     raw.ClobTokenIDs[1],
		AcceptingOrders: raw.AcceptingOrders,
	}

	// Sin precios publicados el mercado arranca en 0.5/0.5.
	snap.UpPrice, snap.DownPrice = 0.5, 0.5
	if len(raw.OutcomePrices) > 0 {
		snap.UpPrice = raw.OutcomePrices[0]
	}
	if len(raw.OutcomePrices) > 1 {
		snap.DownPrice = raw.OutcomePrices[1]
	}

	if v, err := raw.BestBid.Float64(); err == nil {
		snap.BestBid = v
	}
	if v, err := raw.BestAsk.Float64(); err == nil {
		snap.BestAsk = v
	}

	snap.EndDate = parseEndDate(raw.EndDate)

	return snap, nil
}

// parseEndDate tolera los formatos de fecha que Gamma usa indistintamente.
func parseEndDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05Z",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// mapPositions convierte los DTOs de /positions a domain.Position.
func mapPositions(raw []rawPosition) []domain.Position {
	positions := make([]domain.Position, 0, len(raw))
	for _, r := range raw {
		size, _ := r.Size.Float64()
		avg, _ := r.AvgPrice.Float64()
		cur, _ := r.CurPrice.Float64()
		positions = append(positions, domain.Position{
			Title:      r.Title,
			Outcome:    r.Outcome,
			Size:       size,
			AvgPrice:   avg,
			CurPrice:   cur,
			Redeemable: r.Redeemable,
			Mergeable:  r.Mergeable,
		})
	}
	return positions
}

// mapActivity convierte los DTOs de /activity a domain.ActivityRecord.
func mapActivity(raw []rawActivity) []domain.ActivityRecord {
	records := make([]domain.ActivityRecord, 0, len(raw))
	for _, r := range raw {
		price, _ := r.Price.Float64()
		size, _ := r.Size.Float64()
		usdc, _ := r.USDCSize.Float64()
		records = append(records, domain.ActivityRecord{
			Type:      r.Type,
			Side:      r.Side,
			Outcome:   r.Outcome,
			Price:     price,
			Size:      size,
			USDCSize:  usdc,
			Timestamp: parseActivityTimestamp(r.Timestamp),
			Slug:      r.Slug,
			Title:     r.Title,
		})
	}
	return records
}
