package ports

import (
	"context"

	"github.com/alejandrodnm/updown/internal/domain"
)

// Notifier presenta el informe de una wallet al usuario.
type Notifier interface {
	// Report imprime el informe completo del analizador.
	Report(ctx context.Context, report domain.WalletReport) error
}
