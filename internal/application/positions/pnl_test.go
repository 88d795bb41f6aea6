package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alejandrodnm/updown/internal/domain"
)

func livePrices(up, down float64) map[domain.Outcome]float64 {
	return map[domain.Outcome]float64{
		domain.OutcomeUp:   up,
		domain.OutcomeDown: down,
	}
}

func TestRecord_UsesLivePrice(t *testing.T) {
	pos := domain.Position{Outcome: "Up", Size: 10, AvgPrice: 0.40, CurPrice: 0.99}

	rec := Record(pos, livePrices(0.60, 0.40), "btc-updown-15m-1700000000")

	// El precio vivo del snapshot gana al CurPrice almacenado
	assert.Equal(t, 0.60, rec.CurrentPrice)
	assert.InDelta(t, 4.0, rec.CostBasis, 1e-9)
	assert.InDelta(t, 6.0, rec.CurrentValue, 1e-9)
	assert.InDelta(t, 2.0, rec.UnrealizedPnl, 1e-9)
	assert.InDelta(t, 50.0, rec.PnlPercent, 1e-9)
	assert.Equal(t, "btc-updown-15m-1700000000", rec.MarketSlug)
}

func TestRecord_FallsBackToStoredPrice(t *testing.T) {
	pos := domain.Position{Outcome: "Up", Size: 10, AvgPrice: 0.40, CurPrice: 0.45}

	rec := Record(pos, map[domain.Outcome]float64{}, "")
	assert.Equal(t, 0.45, rec.CurrentPrice)
}

func TestRecord_UnknownOutcomeUsesStoredPrice(t *testing.T) {
	pos := domain.Position{Outcome: "Yes", Size: 10, AvgPrice: 0.40, CurPrice: 0.35}

	rec := Record(pos, livePrices(0.60, 0.40), "")
	assert.Equal(t, 0.35, rec.CurrentPrice)
}

func TestRecord_DefaultsToZeroPrice(t *testing.T) {
	pos := domain.Position{Outcome: "Up", Size: 10, AvgPrice: 0.40}

	rec := Record(pos, map[domain.Outcome]float64{}, "")
	assert.Equal(t, 0.0, rec.CurrentPrice)
	assert.InDelta(t, -4.0, rec.UnrealizedPnl, 1e-9)
}

func TestRecord_ZeroCostBasisPolicy(t *testing.T) {
	// pnlPercent debe ser exactamente 0 con cost basis 0, sea cual sea
	// la combinación que lo produce
	cases := []domain.Position{
		{Outcome: "Up", Size: 0, AvgPrice: 0.50},
		{Outcome: "Up", Size: 10, AvgPrice: 0},
		{Outcome: "Up", Size: 0, AvgPrice: 0},
	}
	for _, pos := range cases {
		rec := Record(pos, livePrices(0.60, 0.40), "")
		assert.Zero(t, rec.PnlPercent, "size=%v avg=%v", pos.Size, pos.AvgPrice)
	}
}
