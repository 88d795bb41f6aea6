package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/updown/internal/domain"
)

const (
	btcQuestion = "Bitcoin Up or Down - January 15, 3PM ET"
	btcMarker   = "Bitcoin Up or Down"
)

func makePos(title, outcome string, size, avgPrice float64) domain.Position {
	return domain.Position{Title: title, Outcome: outcome, Size: size, AvgPrice: avgPrice}
}

func TestAggregate_WeightedAverage(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.40),
		makePos(btcQuestion, "Up", 30, 0.60),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 1)

	assert.Equal(t, domain.OutcomeUp, agg[0].Outcome)
	assert.Equal(t, 40.0, agg[0].Size)
	// (10·0.40 + 30·0.60) / 40 = 0.55
	assert.InDelta(t, 0.55, agg[0].AvgPrice, 1e-9)
	assert.Equal(t, 2, agg[0].Count)

	// La media ponderada queda acotada por los precios que contribuyen
	assert.GreaterOrEqual(t, agg[0].AvgPrice, 0.40)
	assert.LessOrEqual(t, agg[0].AvgPrice, 0.60)
}

func TestAggregate_FiltersOtherMarkets(t *testing.T) {
	other := "Bitcoin Up or Down - January 15, 4PM ET"
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.50),
		makePos(other, "Up", 99, 0.10),
		makePos("Will it rain tomorrow?", "Up", 50, 0.20),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 1)

	// Solo la posición de la pregunta exacta contribuye al total
	assert.Equal(t, 10.0, agg[0].Size)
	assert.InDelta(t, 0.50, agg[0].AvgPrice, 1e-9)
}

func TestAggregate_RequiresMarker(t *testing.T) {
	question := "Will it rain tomorrow?"
	list := []domain.Position{makePos(question, "Up", 10, 0.50)}

	// La pregunta matchea pero no es de la familia de producto
	agg := Aggregate(list, question, btcMarker)
	assert.Empty(t, agg)
}

func TestAggregate_IgnoresUnknownOutcomes(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.50),
		makePos(btcQuestion, "Yes", 20, 0.30),
		makePos(btcQuestion, "", 5, 0.70),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 1)
	assert.Equal(t, domain.OutcomeUp, agg[0].Outcome)
	assert.Equal(t, 10.0, agg[0].Size)
}

func TestAggregate_OmitsZeroSizeOutcomes(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.50),
		makePos(btcQuestion, "Down", 0, 0.40),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 1)
	assert.Equal(t, domain.OutcomeUp, agg[0].Outcome)
}

func TestAggregate_BothOutcomes(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.30),
		makePos(btcQuestion, "Down", 20, 0.65),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 2)
	// Orden determinista: Up primero, Down después
	assert.Equal(t, domain.OutcomeUp, agg[0].Outcome)
	assert.Equal(t, domain.OutcomeDown, agg[1].Outcome)
}

func TestAggregate_Idempotent(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 10, 0.40),
		makePos(btcQuestion, "Down", 7.5, 0.55),
	}

	first := Aggregate(list, btcQuestion, btcMarker)
	second := Aggregate(list, btcQuestion, btcMarker)

	// Sin acumulación oculta entre llamadas
	assert.Equal(t, first, second)
}

func TestAggregate_PresentationRounding(t *testing.T) {
	list := []domain.Position{
		makePos(btcQuestion, "Up", 3.333, 0.3333),
		makePos(btcQuestion, "Up", 6.667, 0.6667),
	}

	agg := Aggregate(list, btcQuestion, btcMarker)
	require.Len(t, agg, 1)

	// Tamaño a 2 decimales, precio a 4
	assert.Equal(t, 10.0, agg[0].Size)
	assert.InDelta(t, 0.5556, agg[0].AvgPrice, 1e-9)
}
