package positions

import "github.com/alejandrodnm/updown/internal/domain"

// Record calcula el P&L no realizado de una posición contra los precios
// actuales. prices va keyed por outcome; si el outcome de la posición no
// tiene precio vivo se usa el CurPrice que la API guardó en la posición,
// y en última instancia 0.
func Record(pos domain.Position, prices map[domain.Outcome]float64, marketSlug string) domain.PnLRecord {
	current := currentPrice(pos, prices)

	costBasis := pos.Size * pos.AvgPrice
	currentValue := pos.Size * current

	// pnlPercent es 0 por política cuando el cost basis es exactamente 0:
	// evita la división por cero sin inventar un porcentaje.
	pnlPercent := 0.0
	if costBasis > 0 {
		pnlPercent = (currentValue - costBasis) / costBasis * 100
	}

	return domain.PnLRecord{
		Outcome:       pos.Outcome,
		Size:          pos.Size,
		AvgPrice:      pos.AvgPrice,
		CurrentPrice:  current,
		CostBasis:     costBasis,
		CurrentValue:  currentValue,
		UnrealizedPnl: currentValue - costBasis,
		PnlPercent:    pnlPercent,
		Redeemable:    pos.Redeemable,
		Mergeable:     pos.Mergeable,
		MarketSlug:    marketSlug,
	}
}

// currentPrice resuelve el precio actual en orden: precio vivo del
// snapshot → CurPrice almacenado en la posición → 0.
func currentPrice(pos domain.Position, prices map[domain.Outcome]float64) float64 {
	if outcome, ok := domain.ParseOutcome(pos.Outcome); ok {
		if p, ok := prices[outcome]; ok {
			return p
		}
	}
	return pos.CurPrice
}
