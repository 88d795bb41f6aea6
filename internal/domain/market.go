package domain

import (
	"errors"
	"fmt"
	"time"
)

// Duración de la ventana de los mercados up/down de corta duración.
const WindowSeconds = 900

// Outcome es uno de los dos resultados binarios del mercado.
type Outcome string

const (
	OutcomeUp   Outcome = "Up"
	OutcomeDown Outcome = "Down"
)

// ParseOutcome normaliza un string de la API a un Outcome reconocido.
// Devuelve false para cualquier valor fuera de {Up, Down}.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "Up", "up", "UP":
		return OutcomeUp, true
	case "Down", "down", "DOWN":
		return OutcomeDown, true
	}
	return "", false
}

// Errores sentinel que distinguen ausencia y datos malformados de un
// fallo de transporte.
var (
	// ErrNoActiveMarket indica que ni la ventana actual ni la anterior
	// tienen un mercado aceptando órdenes. No es un error de red.
	ErrNoActiveMarket = errors.New("no active market found")

	// ErrMissingTokenIDs indica que el mercado llegó sin los dos token IDs.
	ErrMissingTokenIDs = errors.New("missing token IDs")
)

// MarketSnapshot es la foto puntual de un mercado up/down de 15 minutos.
// Se deriva fresca en cada fetch y nunca se persiste.
type MarketSnapshot struct {
	Question        string
	Slug            string
	EndDate         time.Time
	UpTokenID       string
	DownTokenID     string
	UpPrice         float64 // en [0,1]; UpPrice + DownPrice ≈ 1.0 (no se fuerza)
	DownPrice       float64
	BestBid         float64
	BestAsk         float64
	AcceptingOrders bool
}

// TokenFor devuelve el token ID del outcome dado.
func (m MarketSnapshot) TokenFor(o Outcome) string {
	if o == OutcomeDown {
		return m.DownTokenID
	}
	return m.UpTokenID
}

// PriceFor devuelve el precio actual del outcome dado.
func (m MarketSnapshot) PriceFor(o Outcome) float64 {
	if o == OutcomeDown {
		return m.DownPrice
	}
	return m.UpPrice
}

// Coins son los coins con mercados up/down de 15 minutos soportados.
var Coins = []string{"btc", "eth"}

// MarketMarker devuelve el marcador de la familia de producto que
// aparece en la pregunta de los mercados up/down del coin.
func MarketMarker(coin string) string {
	switch coin {
	case "btc":
		return "Bitcoin Up or Down"
	case "eth":
		return "Ethereum Up or Down"
	}
	return ""
}

// WindowStart devuelve el inicio de la ventana de 15 minutos que contiene t.
func WindowStart(t time.Time) int64 {
	return t.Unix() / WindowSeconds * WindowSeconds
}

// MarketSlug construye el slug canónico de la ventana de un coin.
// Ej: "btc-updown-15m-1700000000".
func MarketSlug(coin string, windowStart int64) string {
	return fmt.Sprintf("%s-updown-15m-%d", coin, windowStart)
}
