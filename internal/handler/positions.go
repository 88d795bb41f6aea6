package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alejandrodnm/updown/internal/application/positions"
	"github.com/alejandrodnm/updown/internal/application/snapshot"
	"github.com/alejandrodnm/updown/internal/domain"
	"github.com/alejandrodnm/updown/internal/ports"
)

// PositionsHandler expone las posiciones de una wallet: agregadas,
// raw y con P&L a precio vivo.
type PositionsHandler struct {
	Fetcher *snapshot.Fetcher
	Wallets ports.WalletProvider
}

func (h *PositionsHandler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/positions", h.aggregated)
	api.GET("/positions/raw", h.raw)
	api.GET("/positions/pnl", h.pnl)
}

// aggregated devuelve las posiciones del mercado BTC activo agregadas
// por outcome con media ponderada.
func (h *PositionsHandler) aggregated(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		fail(c, http.StatusBadRequest, "Missing wallet parameter")
		return
	}

	// Sin mercado activo la pregunta queda vacía y no matchea nada.
	question := ""
	if snap, err := h.Fetcher.Current(c.Request.Context(), "btc"); err == nil {
		question = snap.Question
	} else if !errors.Is(err, domain.ErrNoActiveMarket) {
		fail(c, http.StatusBadGateway, err.Error())
		return
	}

	list, err := h.Wallets.FetchPositions(c.Request.Context(), wallet)
	if err != nil {
		fail(c, http.StatusBadGateway, err.Error())
		return
	}

	agg := positions.Aggregate(list, question, domain.MarketMarker("btc"))
	ok(c, gin.H{"positions": agg, "current_market": question})
}

// raw devuelve las posiciones sin agregar de los mercados BTC y ETH
// activos, etiquetadas con su tipo de mercado.
func (h *PositionsHandler) raw(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		fail(c, http.StatusBadRequest, "Missing wallet parameter")
		return
	}

	markets := h.currentMarkets(c)

	list, err := h.Wallets.FetchPositions(c.Request.Context(), wallet)
	if err != nil {
		fail(c, http.StatusBadGateway, err.Error())
		return
	}

	marketsPayload := gin.H{}
	var result []gin.H
	for _, coin := range domain.Coins {
		snap, found := markets[coin]
		if !found {
			continue
		}
		marketsPayload[snap.Slug] = gin.H{"question": snap.Question, "slug": snap.Slug}

		for _, pos := range list {
			if pos.Title != snap.Question {
				continue
			}
			result = append(result, gin.H{
				"title":       pos.Title,
				"outcome":     pos.Outcome,
				"size":        pos.Size,
				"avg_price":   pos.AvgPrice,
				"cur_price":   pos.CurPrice,
				"redeemable":  pos.Redeemable,
				"mergeable":   pos.Mergeable,
				"market_type": coinKey(coin),
				"market_slug": snap.Slug,
			})
		}
	}

	ok(c, gin.H{"positions": result, "markets": marketsPayload})
}

// pnl devuelve las posiciones de los mercados activos con su P&L
// calculado a precio vivo, keyed por coin.
func (h *PositionsHandler) pnl(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		fail(c, http.StatusBadRequest, "Missing wallet parameter")
		return
	}

	markets := h.currentMarkets(c)

	list, err := h.Wallets.FetchPositions(c.Request.Context(), wallet)
	if err != nil {
		fail(c, http.StatusBadGateway, err.Error())
		return
	}

	result := gin.H{}
	pricesPayload := gin.H{}
	for _, coin := range domain.Coins {
		records := []domain.PnLRecord{}
		snap, found := markets[coin]
		if found {
			pricesPayload[coinKey(coin)] = gin.H{
				"up_price":   snap.UpPrice,
				"down_price": snap.DownPrice,
				"question":   snap.Question,
				"slug":       snap.Slug,
			}

			livePrices := map[domain.Outcome]float64{
				domain.OutcomeUp:   snap.UpPrice,
				domain.OutcomeDown: snap.DownPrice,
			}
			for _, pos := range list {
				if pos.Title != snap.Question {
					continue
				}
				records = append(records, positions.Record(pos, livePrices, snap.Slug))
			}
		}
		result[coinKey(coin)] = records
	}

	ok(c, gin.H{
		"positions": result,
		"prices":    pricesPayload,
		"timestamp": time.Now().Unix(),
	})
}

// currentMarkets resuelve el snapshot activo de cada coin; los coins sin
// mercado o con error se omiten sin abortar el request.
func (h *PositionsHandler) currentMarkets(c *gin.Context) map[string]domain.MarketSnapshot {
	markets := make(map[string]domain.MarketSnapshot, len(domain.Coins))
	for _, coin := range domain.Coins {
		snap, err := h.Fetcher.Current(c.Request.Context(), coin)
		if err != nil {
			if !errors.Is(err, domain.ErrNoActiveMarket) {
				slog.Warn("market fetch failed", "coin", coin, "err", err)
			}
			continue
		}
		markets[coin] = snap
	}
	return markets
}
