package walletstats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alejandrodnm/updown/internal/domain"
)

const (
	// windowMarker separa el prefijo del slug del timestamp de la ventana.
	windowMarker = "15m-"

	// maxWindows limita el informe a las ventanas más recientes.
	maxWindows = 10

	// maxRecent limita el detalle de trades recientes.
	maxRecent = 20
)

// Analyze calcula el informe descriptivo del comportamiento de una
// wallet a partir de su historial plano de actividad. Sin side effects:
// los registros que no pasan los filtros de tipo o side se excluyen del
// agregado correspondiente sin error.
func Analyze(wallet string, records []domain.ActivityRecord) domain.WalletReport {
	report := domain.WalletReport{
		Wallet:       wallet,
		TotalRecords: len(records),
	}

	var trades []domain.ActivityRecord
	for _, r := range records {
		if r.IsTrade() {
			trades = append(trades, r)
		}
	}
	report.TradeCount = len(trades)

	markets := make(map[string]struct{})
	for _, t := range trades {
		markets[t.Slug] = struct{}{}
	}
	report.MarketCount = len(markets)

	report.Outcomes = outcomeStats(trades)
	report.PriceBands = priceBands(trades)
	report.Windows = windowStats(trades)
	report.Notional = notionalStats(trades)

	buyStats(&report, trades)

	// La API devuelve la actividad más reciente primero.
	for _, t := range trades {
		if len(report.Recent) >= maxRecent {
			break
		}
		report.Recent = append(report.Recent, t)
	}

	return report
}

// outcomeStats acumula count/tamaño/coste por valor de outcome.
func outcomeStats(trades []domain.ActivityRecord) []domain.OutcomeStat {
	acc := make(map[string]*domain.OutcomeStat)
	for _, t := range trades {
		outcome := t.Outcome
		if outcome == "" {
			outcome = "Unknown"
		}
		s, ok := acc[outcome]
		if !ok {
			s = &domain.OutcomeStat{Outcome: outcome}
			acc[outcome] = s
		}
		s.Count++
		s.TotalSize += t.Size
		s.TotalCost += t.USDCSize
	}

	stats := make([]domain.OutcomeStat, 0, len(acc))
	for _, s := range acc {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Outcome < stats[j].Outcome })
	return stats
}

// bandLabel asigna un precio de compra a su banda fija de ancho 0.1.
// Los precios bajo 0.10 van a una banda explícita en vez de perderse.
func bandLabel(price float64) string {
	switch {
	case price < 0.1:
		return "0.00-0.09"
	case price < 0.2:
		return "0.10-0.19"
	case price < 0.3:
		return "0.20-0.29"
	case price < 0.4:
		return "0.30-0.39"
	case price < 0.5:
		return "0.40-0.49"
	case price < 0.6:
		return "0.50-0.59"
	case price < 0.7:
		return "0.60-0.69"
	case price < 0.8:
		return "0.70-0.79"
	case price < 0.9:
		return "0.80-0.89"
	default:
		return "0.90+"
	}
}

// priceBands distribuye los trades BUY en bandas fijas de precio.
// Solo se devuelven las bandas con al menos un trade, ordenadas.
func priceBands(trades []domain.ActivityRecord) []domain.PriceBand {
	acc := make(map[string]*domain.PriceBand)
	for _, t := range trades {
		if t.Side != domain.SideBuy {
			continue
		}
		label := bandLabel(t.Price)
		b, ok := acc[label]
		if !ok {
			b = &domain.PriceBand{Label: label}
			acc[label] = b
		}
		b.Count++
		b.TotalCost += t.USDCSize
	}

	bands := make([]domain.PriceBand, 0, len(acc))
	for _, b := range acc {
		bands = append(bands, *b)
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].Label < bands[j].Label })
	return bands
}

// WindowKey extrae el timestamp de la ventana de 15 minutos del slug.
// Ej: "btc-updown-15m-1700000000" → "1700000000". Devuelve false si el
// slug no contiene el marcador.
func WindowKey(slug string) (string, bool) {
	idx := strings.Index(slug, windowMarker)
	if idx < 0 {
		return "", false
	}
	key := slug[idx+len(windowMarker):]
	if key == "" {
		return "", false
	}
	return key, true
}

// windowStats agrega los trades por ventana de 15 minutos, más recientes
// primero, truncado a maxWindows.
func windowStats(trades []domain.ActivityRecord) []domain.WindowStat {
	type winAcc struct {
		trades    int
		totalCost float64
		outcomes  map[string]struct{}
	}

	acc := make(map[string]*winAcc)
	for _, t := range trades {
		key, ok := WindowKey(t.Slug)
		if !ok {
			continue
		}
		w, ok := acc[key]
		if !ok {
			w = &winAcc{outcomes: make(map[string]struct{})}
			acc[key] = w
		}
		w.trades++
		w.totalCost += t.USDCSize
		w.outcomes[t.Outcome] = struct{}{}
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > maxWindows {
		keys = keys[:maxWindows]
	}

	stats := make([]domain.WindowStat, 0, len(keys))
	for _, k := range keys {
		w := acc[k]
		outcomes := make([]string, 0, len(w.outcomes))
		for o := range w.outcomes {
			outcomes = append(outcomes, o)
		}
		sort.Strings(outcomes)

		var start time.Time
		if ts, err := strconv.ParseInt(k, 10, 64); err == nil {
			start = time.Unix(ts, 0).UTC()
		}

		stats = append(stats, domain.WindowStat{
			Key:       k,
			Start:     start,
			Trades:    w.trades,
			TotalCost: w.totalCost,
			Outcomes:  outcomes,
		})
	}
	return stats
}

// notionalStats calcula min/max/media/mediana/suma del notional por trade.
func notionalStats(trades []domain.ActivityRecord) domain.NotionalStats {
	if len(trades) == 0 {
		return domain.NotionalStats{}
	}

	amounts := make([]float64, 0, len(trades))
	sum := 0.0
	for _, t := range trades {
		amounts = append(amounts, t.USDCSize)
		sum += t.USDCSize
	}
	sort.Float64s(amounts)

	return domain.NotionalStats{
		Min:    amounts[0],
		Max:    amounts[len(amounts)-1],
		Mean:   sum / float64(len(amounts)),
		Median: amounts[len(amounts)/2],
		Sum:    sum,
	}
}

// buyStats calcula el ratio compra/venta y el sesgo de entrada.
func buyStats(report *domain.WalletReport, trades []domain.ActivityRecord) {
	var buyPriceSum float64
	for _, t := range trades {
		switch t.Side {
		case domain.SideBuy:
			report.BuyCount++
			buyPriceSum += t.Price
			if t.Price < 0.5 {
				report.BuysBelowHalf++
			}
		case domain.SideSell:
			report.SellCount++
		}
	}

	if report.BuyCount == 0 {
		return
	}
	report.AvgBuyPrice = buyPriceSum / float64(report.BuyCount)
	if report.AvgBuyPrice < 0.5 {
		report.Lean = domain.LeanLowPrice
	} else {
		report.Lean = domain.LeanHighProb
	}
}
