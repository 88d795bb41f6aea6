package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/alejandrodnm/updown/internal/domain"
)

const positionsPerPage = 500

// FetchPositions obtiene las posiciones abiertas de una wallet desde la
// Data API pública.
func (c *Client) FetchPositions(ctx context.Context, wallet string) ([]domain.Position, error) {
	url := fmt.Sprintf("%s/positions?user=%s&limit=%d", c.dataBase, wallet, positionsPerPage)

	var raw []rawPosition
	if err := c.get(ctx, c.dataLimiter, url, &raw); err != nil {
		return nil, fmt.Errorf("data-api.FetchPositions: %w", err)
	}

	slog.Debug("fetched positions", "wallet", wallet, "count", len(raw))
	return mapPositions(raw), nil
}

// FetchActivity obtiene hasta limit registros de actividad de una wallet,
// más recientes primero tal como los devuelve la API.
func (c *Client) FetchActivity(ctx context.Context, wallet string, limit int) ([]domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = 1000
	}
	url := fmt.Sprintf("%s/activity?user=%s&limit=%d", c.dataBase, wallet, limit)

	var raw []rawActivity
	if err := c.get(ctx, c.dataLimiter, url, &raw); err != nil {
		return nil, fmt.Errorf("data-api.FetchActivity: %w", err)
	}

	slog.Debug("fetched activity", "wallet", wallet, "count", len(raw))
	return mapActivity(raw), nil
}

// parseActivityTimestamp tolera epoch en segundos, milisegundos y float.
func parseActivityTimestamp(n json.Number) time.Time {
	s := n.String()
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec > 1e12 {
			return time.Unix(sec/1000, (sec%1000)*int64(time.Millisecond)).UTC()
		}
		return time.Unix(sec, 0).UTC()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		sec := int64(f)
		nsec := int64((f - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC()
	}
	return time.Time{}
}
