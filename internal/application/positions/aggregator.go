package positions

import (
	"strings"

	"github.com/alejandrodnm/updown/internal/domain"
)

// accumulator acumula tamaño y coste de un outcome a precisión completa.
type accumulator struct {
	size  float64
	cost  float64
	count int
}

// Aggregate filtra las posiciones del mercado con la pregunta target y
// suma tamaño y coste por outcome. La media ponderada solo se calcula
// para outcomes con tamaño estrictamente positivo; los de tamaño cero se
// omiten del resultado. marker restringe a la familia de producto (p.ej.
// "Bitcoin Up or Down") para no confundir preguntas idénticas de otros
// mercados. Pura e idempotente: misma entrada, misma salida.
func Aggregate(positions []domain.Position, question, marker string) []domain.AggregatedPosition {
	acc := map[domain.Outcome]*accumulator{
		domain.OutcomeUp:   {},
		domain.OutcomeDown: {},
	}

	for _, pos := range positions {
		if pos.Title != question || !strings.Contains(pos.Title, marker) {
			continue
		}
		outcome, ok := domain.ParseOutcome(pos.Outcome)
		if !ok {
			// Outcomes fuera de {Up, Down} se ignoran en silencio.
			continue
		}
		a := acc[outcome]
		a.size += pos.Size
		a.cost += pos.Size * pos.AvgPrice
		a.count++
	}

	var result []domain.AggregatedPosition
	for _, outcome := range []domain.Outcome{domain.OutcomeUp, domain.OutcomeDown} {
		a := acc[outcome]
		if a.size <= 0 {
			continue
		}
		result = append(result, domain.AggregatedPosition{
			Outcome:  outcome,
			Size:     domain.Round2(a.size),
			AvgPrice: domain.Round4(a.cost / a.size),
			Count:    a.count,
		})
	}
	return result
}
