package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alejandrodnm/updown/internal/application/snapshot"
	"github.com/alejandrodnm/updown/internal/domain"
)

// MarketHandler expone el snapshot del mercado activo y los precios
// de los dos coins.
type MarketHandler struct {
	Fetcher *snapshot.Fetcher
}

func (h *MarketHandler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/market", h.market)
	api.GET("/prices", h.prices)
}

// market devuelve el snapshot del mercado de 15 minutos activo del coin
// (btc por defecto). La ausencia de mercado activo no es un error HTTP:
// viaja como success:false con mensaje.
func (h *MarketHandler) market(c *gin.Context) {
	coin := c.DefaultQuery("coin", "btc")

	snap, err := h.Fetcher.Current(c.Request.Context(), coin)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveMarket) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "No active market found"})
			return
		}
		fail(c, http.StatusBadGateway, err.Error())
		return
	}

	ok(c, gin.H{"market": marketPayload(snap)})
}

// prices devuelve los precios actuales de BTC y ETH. Los dos fetches son
// secuenciales; un coin sin mercado activo simplemente no aparece.
func (h *MarketHandler) prices(c *gin.Context) {
	markets := gin.H{}
	for _, coin := range domain.Coins {
		snap, err := h.Fetcher.Current(c.Request.Context(), coin)
		if err != nil {
			if !errors.Is(err, domain.ErrNoActiveMarket) {
				slog.Warn("price fetch failed", "coin", coin, "err", err)
			}
			continue
		}
		markets[coinKey(coin)] = gin.H{
			"up_price":   snap.UpPrice,
			"down_price": snap.DownPrice,
			"slug":       snap.Slug,
		}
	}

	ok(c, gin.H{"markets": markets, "timestamp": time.Now().Unix()})
}

// marketPayload es la forma JSON pública de un MarketSnapshot.
func marketPayload(snap domain.MarketSnapshot) gin.H {
	return gin.H{
		"question": snap.Question,
		"slug":     snap.Slug,
		"end_date": snap.EndDate,
		"token_ids": gin.H{
			"up":   snap.UpTokenID,
			"down": snap.DownTokenID,
		},
		"outcome_prices": []float64{snap.UpPrice, snap.DownPrice},
		"best_bid":       snap.BestBid,
		"best_ask":       snap.BestAsk,
	}
}

// coinKey es la clave pública del coin en los payloads ("BTC", "ETH").
func coinKey(coin string) string {
	switch coin {
	case "btc":
		return "BTC"
	case "eth":
		return "ETH"
	}
	return coin
}
