package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/alejandrodnm/updown/config"
	"github.com/alejandrodnm/updown/internal/adapters/polymarket"
	"github.com/alejandrodnm/updown/internal/application/orders"
	"github.com/alejandrodnm/updown/internal/application/snapshot"
	"github.com/alejandrodnm/updown/internal/handler"
	"github.com/alejandrodnm/updown/internal/ports"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	client := polymarket.NewClient(cfg.API.GammaBase, cfg.API.DataBase, cfg.API.CLOBBase)
	fetcher := snapshot.New(client)

	// El trading client se construye una única vez en el arranque y se
	// inyecta explícitamente; sin clave privada el endpoint de ejecución
	// informa la indisponibilidad y todo lo demás sigue funcionando.
	var executor ports.OrderExecutor
	if key := config.PrivateKey(); key != "" {
		auth, err := polymarket.NewAuthClient(client, key, cfg.Trading.ProxyAddress)
		if err != nil {
			slog.Error("trading client init failed, order execution disabled", "err", err)
		} else {
			executor = polymarket.NewTradingClient(auth)
			slog.Info("trading client ready", "address", auth.Address(), "proxy", cfg.Trading.ProxyAddress)
		}
	} else {
		slog.Info("POLYMARKET_PRIVATE_KEY not set, order execution disabled")
	}

	engine := orders.New(orders.Config{
		DefaultSize:  cfg.Trading.DefaultSize,
		BuyPremium:   cfg.Trading.BuyPremium,
		SellDiscount: cfg.Trading.SellDiscount,
	}, executor)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	(&handler.MarketHandler{Fetcher: fetcher}).Register(router)
	(&handler.PositionsHandler{Fetcher: fetcher, Wallets: client}).Register(router)
	(&handler.OrdersHandler{Fetcher: fetcher, Engine: engine}).Register(router)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("updown server starting", "addr", cfg.Server.Addr, "config", *configPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
		os.Exit(1)
	}

	slog.Info("updown server stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
