package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alejandrodnm/updown/internal/domain"
	"github.com/alejandrodnm/updown/internal/ports"
)

// Config controla los offsets y el tamaño por defecto de las propuestas.
type Config struct {
	DefaultSize  float64 // shares por pata si el caller no indica tamaño
	BuyPremium   float64 // prima sobre el quote del lado barato (mejora el fill)
	SellDiscount float64 // descuento sobre el quote del lado caro
}

// DefaultConfig devuelve los valores históricos de la estrategia.
func DefaultConfig() Config {
	return Config{DefaultSize: 10, BuyPremium: 0.015, SellDiscount: 0.015}
}

// Engine decide qué lado del mercado está barato y construye las órdenes
// límite. Decisión stateless y single-shot: sin profundidad de libro, sin
// fills parciales, sin cancelaciones.
type Engine struct {
	cfg      Config
	executor ports.OrderExecutor // nil si el trading en vivo no está configurado
}

// New crea un Engine. executor puede ser nil; en ese caso Execute informa
// la indisponibilidad en el report sin tocar la red.
func New(cfg Config, executor ports.OrderExecutor) *Engine {
	if cfg.DefaultSize <= 0 {
		cfg.DefaultSize = 10
	}
	if cfg.BuyPremium <= 0 {
		cfg.BuyPremium = 0.015
	}
	if cfg.SellDiscount <= 0 {
		cfg.SellDiscount = 0.015
	}
	return &Engine{cfg: cfg, executor: executor}
}

// cheapSide devuelve el outcome estrictamente más barato y el caro.
// En empate el lado Down se considera barato, igual que siempre hizo la
// estrategia original.
func (e *Engine) cheapSide(snap domain.MarketSnapshot) (cheap, expensive domain.Outcome) {
	if snap.UpPrice < snap.DownPrice {
		return domain.OutcomeUp, domain.OutcomeDown
	}
	return domain.OutcomeDown, domain.OutcomeUp
}

// Propose construye el par de órdenes límite de la variante paper: BUY
// del lado barato con prima y SELL del lado caro con descuento. No envía
// nada. size <= 0 usa el tamaño por defecto.
func (e *Engine) Propose(snap domain.MarketSnapshot, size float64) []domain.OrderProposal {
	if size <= 0 {
		size = e.cfg.DefaultSize
	}
	cheap, expensive := e.cheapSide(snap)
	cheapPrice := snap.PriceFor(cheap)
	expensivePrice := snap.PriceFor(expensive)

	buy := domain.OrderProposal{
		ID:           uuid.NewString(),
		Side:         domain.SideBuy,
		Outcome:      cheap,
		TokenID:      snap.TokenFor(cheap),
		Price:        domain.Round4(cheapPrice * (1 + e.cfg.BuyPremium)),
		CurrentPrice: cheapPrice,
		Size:         size,
		Type:         "LIMIT",
	}
	sell := domain.OrderProposal{
		ID:           uuid.NewString(),
		Side:         domain.SideSell,
		Outcome:      expensive,
		TokenID:      snap.TokenFor(expensive),
		Price:        domain.Round4(expensivePrice * (1 - e.cfg.SellDiscount)),
		CurrentPrice: expensivePrice,
		Size:         size,
		Type:         "LIMIT",
	}
	return []domain.OrderProposal{buy, sell}
}

// Execute envía la variante en vivo: solo la pata BUY del lado barato.
// Un fallo en la pata se captura en su LegResult sin abortar el report;
// Success es true si al menos una pata entró.
func (e *Engine) Execute(ctx context.Context, snap domain.MarketSnapshot, size float64) domain.ExecutionReport {
	if size <= 0 {
		size = e.cfg.DefaultSize
	}
	cheap, _ := e.cheapSide(snap)
	cheapPrice := snap.PriceFor(cheap)
	limitPrice := domain.Round4(cheapPrice * (1 + e.cfg.BuyPremium))

	leg := domain.LegResult{
		Side:         domain.SideBuy,
		Outcome:      cheap,
		Price:        limitPrice,
		CurrentPrice: cheapPrice,
		Size:         size,
	}

	if e.executor == nil {
		leg.Error = "trading client not available"
		return domain.ExecutionReport{
			Success: false,
			Results: []domain.LegResult{leg},
			Summary: "trading client not available",
		}
	}

	slog.Info("placing live order",
		"outcome", cheap,
		"current_price", cheapPrice,
		"limit_price", limitPrice,
		"size", size,
	)

	placed, err := e.executor.PlaceOrder(ctx, domain.PlaceOrderRequest{
		TokenID: snap.TokenFor(cheap),
		Side:    domain.SideBuy,
		Price:   limitPrice,
		Size:    size,
	})
	if err != nil {
		slog.Warn("order submission failed", "outcome", cheap, "err", err)
		leg.Error = err.Error()
	} else {
		leg.OrderID = placed.OrderID
		leg.Success = true
	}

	report := domain.ExecutionReport{
		Success: leg.Success,
		Results: []domain.LegResult{leg},
	}
	succeeded := 0
	if leg.Success {
		succeeded = 1
	}
	report.Summary = fmt.Sprintf("placed %d/1 - BUY %s (%.1f%% -> %.1f%%)",
		succeeded, cheap, cheapPrice*100, limitPrice*100)
	return report
}
