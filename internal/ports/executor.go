package ports

import (
	"context"

	"github.com/alejandrodnm/updown/internal/domain"
)

// OrderExecutor firma y envía órdenes límite reales al CLOB.
type OrderExecutor interface {
	// PlaceOrder firma y envía una orden límite GTC. Devuelve el resultado
	// ya normalizado a domain.PlacedOrder; la tolerancia a las distintas
	// formas de respuesta del CLOB vive en el adapter, no aquí.
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlacedOrder, error)
}
