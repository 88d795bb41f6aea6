package ports

import (
	"context"

	"github.com/alejandrodnm/updown/internal/domain"
)

// WalletProvider obtiene posiciones abiertas e historial de una wallet
// desde la Data API.
type WalletProvider interface {
	// FetchPositions devuelve las posiciones abiertas de la wallet.
	FetchPositions(ctx context.Context, wallet string) ([]domain.Position, error)

	// FetchActivity devuelve hasta limit registros de actividad de la
	// wallet, más recientes primero.
	FetchActivity(ctx context.Context, wallet string, limit int) ([]domain.ActivityRecord, error)
}
