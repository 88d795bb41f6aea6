package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alejandrodnm/updown/internal/application/orders"
	"github.com/alejandrodnm/updown/internal/application/snapshot"
	"github.com/alejandrodnm/updown/internal/domain"
)

// OrdersHandler expone el cálculo de propuestas y la ejecución en vivo.
type OrdersHandler struct {
	Fetcher *snapshot.Fetcher
	Engine  *orders.Engine
}

func (h *OrdersHandler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/orders/calculate", h.calculate)
	api.POST("/orders/place", h.place)
}

// orderRequest es el body de los dos endpoints de órdenes.
type orderRequest struct {
	Size float64 `json:"size"`
}

// calculate construye el par de propuestas límite sin enviar nada.
func (h *OrdersHandler) calculate(c *gin.Context) {
	var req orderRequest
	_ = c.ShouldBindJSON(&req) // body vacío → tamaño por defecto

	snap, err := h.currentMarket(c)
	if err != nil {
		return
	}

	proposals := h.Engine.Propose(snap, req.Size)
	ok(c, gin.H{
		"orders": proposals,
		"market": gin.H{"question": snap.Question, "end_date": snap.EndDate},
	})
}

// place firma y envía la variante en vivo (solo la pata BUY del lado
// barato). Los fallos por pata viajan dentro de results.
func (h *OrdersHandler) place(c *gin.Context) {
	var req orderRequest
	_ = c.ShouldBindJSON(&req)

	snap, err := h.currentMarket(c)
	if err != nil {
		return
	}

	report := h.Engine.Execute(c.Request.Context(), snap, req.Size)
	c.JSON(http.StatusOK, gin.H{
		"success": report.Success,
		"results": report.Results,
		"summary": report.Summary,
		"market":  gin.H{"question": snap.Question, "end_date": snap.EndDate},
	})
}

// currentMarket resuelve el mercado BTC activo o responde el error.
func (h *OrdersHandler) currentMarket(c *gin.Context) (domain.MarketSnapshot, error) {
	snap, err := h.Fetcher.Current(c.Request.Context(), "btc")
	if err == nil {
		return snap, nil
	}

	switch {
	case errors.Is(err, domain.ErrNoActiveMarket):
		fail(c, http.StatusBadRequest, "No active market")
	case errors.Is(err, domain.ErrMissingTokenIDs):
		fail(c, http.StatusBadRequest, "Missing token IDs")
	default:
		fail(c, http.StatusBadGateway, err.Error())
	}
	return domain.MarketSnapshot{}, err
}
