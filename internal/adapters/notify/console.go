package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/updown/internal/domain"
)

// Console implementa ports.Notifier imprimiendo el informe de la wallet
// en texto plano con tablas.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Report imprime el informe completo del analizador.
func (c *Console) Report(_ context.Context, r domain.WalletReport) error {
	sep := strings.Repeat("=", 80)
	fmt.Fprintln(c.out, sep)
	fmt.Fprintf(c.out, "Wallet report: %s\n", r.Wallet)
	fmt.Fprintln(c.out, sep)
	fmt.Fprintf(c.out, "Total records:  %d\n", r.TotalRecords)
	fmt.Fprintf(c.out, "Trades:         %d\n", r.TradeCount)
	fmt.Fprintf(c.out, "Markets:        %d\n", r.MarketCount)
	fmt.Fprintln(c.out)

	c.printOutcomes(r.Outcomes)
	c.printPriceBands(r.PriceBands)
	c.printWindows(r.Windows)
	c.printNotional(r.Notional)
	c.printStrategy(r)
	c.printRecent(r.Recent)

	return nil
}

func (c *Console) printOutcomes(stats []domain.OutcomeStat) {
	fmt.Fprintln(c.out, "Trades by outcome:")
	if len(stats) == 0 {
		fmt.Fprintln(c.out, "  (none)")
		fmt.Fprintln(c.out)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Outcome", "Trades", "Total size", "Total cost")
	for _, s := range stats {
		table.Append(
			s.Outcome,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.2f", s.TotalSize),
			fmt.Sprintf("$%.2f", s.TotalCost),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

func (c *Console) printPriceBands(bands []domain.PriceBand) {
	fmt.Fprintln(c.out, "BUY price distribution:")
	if len(bands) == 0 {
		fmt.Fprintln(c.out, "  (no buys)")
		fmt.Fprintln(c.out)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Band", "Trades", "Total cost")
	for _, b := range bands {
		table.Append(b.Label, fmt.Sprintf("%d", b.Count), fmt.Sprintf("$%.2f", b.TotalCost))
	}
	table.Render()
	fmt.Fprintln(c.out)
}

func (c *Console) printWindows(windows []domain.WindowStat) {
	fmt.Fprintln(c.out, "Most recent 15-minute windows:")
	if len(windows) == 0 {
		fmt.Fprintln(c.out, "  (none)")
		fmt.Fprintln(c.out)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Window (UTC)", "Key", "Trades", "Total cost", "Outcomes")
	for _, w := range windows {
		start := "?"
		if !w.Start.IsZero() {
			start = w.Start.Format("2006-01-02 15:04")
		}
		table.Append(
			start,
			w.Key,
			fmt.Sprintf("%d", w.Trades),
			fmt.Sprintf("$%.2f", w.TotalCost),
			strings.Join(w.Outcomes, ", "),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

func (c *Console) printNotional(n domain.NotionalStats) {
	fmt.Fprintln(c.out, "Notional per trade:")
	fmt.Fprintf(c.out, "  min:    $%.2f\n", n.Min)
	fmt.Fprintf(c.out, "  max:    $%.2f\n", n.Max)
	fmt.Fprintf(c.out, "  mean:   $%.2f\n", n.Mean)
	fmt.Fprintf(c.out, "  median: $%.2f\n", n.Median)
	fmt.Fprintf(c.out, "  sum:    $%.2f\n", n.Sum)
	fmt.Fprintln(c.out)
}

func (c *Console) printStrategy(r domain.WalletReport) {
	fmt.Fprintln(c.out, "Strategy profile:")
	total := r.BuyCount + r.SellCount
	if total == 0 {
		fmt.Fprintln(c.out, "  (no trades)")
		fmt.Fprintln(c.out)
		return
	}

	fmt.Fprintf(c.out, "  buys:  %d/%d (%.1f%%)\n",
		r.BuyCount, total, float64(r.BuyCount)/float64(total)*100)
	fmt.Fprintf(c.out, "  sells: %d/%d (%.1f%%)\n",
		r.SellCount, total, float64(r.SellCount)/float64(total)*100)

	if r.BuyCount > 0 {
		fmt.Fprintf(c.out, "  avg buy price:   %.4f\n", r.AvgBuyPrice)
		fmt.Fprintf(c.out, "  buys below 0.50: %d/%d (%.1f%%)\n",
			r.BuysBelowHalf, r.BuyCount,
			float64(r.BuysBelowHalf)/float64(r.BuyCount)*100)
		fmt.Fprintf(c.out, "  lean: %s\n", r.Lean)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printRecent(recent []domain.ActivityRecord) {
	fmt.Fprintf(c.out, "Most recent %d trades:\n", len(recent))
	for i, t := range recent {
		title := t.Title
		if len(title) > 50 {
			title = title[:50]
		}
		fmt.Fprintf(c.out, "  %2d. [%s] %-4s %-4s @ %.4f x%.2f = $%.2f\n",
			i+1, t.Timestamp.UTC().Format("01-02 15:04"),
			t.Side, t.Outcome, t.Price, t.Size, t.USDCSize)
		fmt.Fprintf(c.out, "      %s\n", title)
	}
}
