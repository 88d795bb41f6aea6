package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alejandrodnm/updown/internal/adapters/notify"
	"github.com/alejandrodnm/updown/internal/adapters/polymarket"
	"github.com/alejandrodnm/updown/internal/application/walletstats"
)

const activityLimit = 1000

func main() {
	verbose := flag.Bool("verbose", false, "set log level to debug")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze <wallet address>")
		fmt.Fprintln(os.Stderr, "example: analyze 0x63ce342161250d705dc0b16df89036c8e5f9ba9a")
		os.Exit(1)
	}
	wallet := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	fmt.Printf("Analyzing wallet: %s\n\n", wallet)

	client := polymarket.NewClient("", "", "")
	ctx := context.Background()

	activity, err := client.FetchActivity(ctx, wallet, activityLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error fetching activity: %v\n", err)
		os.Exit(1)
	}

	report := walletstats.Analyze(wallet, activity)

	console := notify.NewConsole()
	if err := console.Report(ctx, report); err != nil {
		fmt.Fprintf(os.Stderr, "error printing report: %v\n", err)
		os.Exit(1)
	}
}
