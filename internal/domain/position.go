package domain

import "math"

// Position es una posición abierta tal como la devuelve la Data API.
// Read-only para el agregador; Title es la pregunta del mercado y actúa
// como join key contra MarketSnapshot.Question.
type Position struct {
	Title      string
	Outcome    string  // valor raw de la API; puede caer fuera de {Up, Down}
	Size       float64 // shares, >= 0
	AvgPrice   float64 // precio medio de entrada en [0,1]
	CurPrice   float64 // último precio conocido según la API
	Redeemable bool
	Mergeable  bool
}

// AggregatedPosition es el total por outcome de todas las posiciones
// de un mismo mercado. Entidad derivada, nunca persistida.
type AggregatedPosition struct {
	Outcome  Outcome `json:"outcome"`
	Size     float64 `json:"size"`      // redondeado a 2 decimales
	AvgPrice float64 `json:"avg_price"` // media ponderada por tamaño, 4 decimales
	Count    int     `json:"count"`     // posiciones que contribuyen
}

// PnLRecord es el P&L no realizado de una posición a precio actual.
type PnLRecord struct {
	Outcome       string  `json:"outcome"`
	Size          float64 `json:"size"`
	AvgPrice      float64 `json:"avg_price"`
	CurrentPrice  float64 `json:"current_price"`
	CostBasis     float64 `json:"cost_basis"`
	CurrentValue  float64 `json:"current_value"`
	UnrealizedPnl float64 `json:"unrealized_pnl"`
	PnlPercent    float64 `json:"pnl_percent"`
	Redeemable    bool    `json:"redeemable"`
	Mergeable     bool    `json:"mergeable"`
	MarketSlug    string  `json:"market_slug"`
}

// Round2 redondea a 2 decimales (presentación de tamaños).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 redondea a 4 decimales (presentación de precios).
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
