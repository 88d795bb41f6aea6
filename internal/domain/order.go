package domain

// Side de una orden.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// OrderProposal es una orden límite propuesta, sin enviar. Transiente:
// se construye por request y se descarta.
type OrderProposal struct {
	ID           string  `json:"id"` // ID local, solo para correlación en el caller
	Side         string  `json:"side"`
	Outcome      Outcome `json:"outcome"`
	TokenID      string  `json:"token_id"`
	Price        float64 `json:"price"` // límite, redondeado a 4 decimales
	CurrentPrice float64 `json:"current_price"`
	Size         float64 `json:"size"`
	Type         string  `json:"type"` // siempre "LIMIT"
}

// PlaceOrderRequest es lo que el executor necesita para firmar y enviar
// una orden al CLOB.
type PlaceOrderRequest struct {
	TokenID string
	Side    string
	Price   float64
	Size    float64
}

// PlacedOrder es la forma canónica del resultado de enviar una orden.
// El adapter del trading client es responsable de normalizar las
// distintas formas de respuesta del CLOB a esta única struct.
type PlacedOrder struct {
	OrderID string
	Status  string
}

// LegResult es el resultado individual de una pata enviada (o fallida).
// Un fallo en una pata no aborta las demás.
type LegResult struct {
	Side         string  `json:"side"`
	Outcome      Outcome `json:"outcome"`
	Price        float64 `json:"price,omitempty"`
	CurrentPrice float64 `json:"current_price,omitempty"`
	Size         float64 `json:"size,omitempty"`
	OrderID      string  `json:"order_id,omitempty"`
	Error        string  `json:"error,omitempty"`
	Success      bool    `json:"success"`
}

// ExecutionReport agrega los resultados de todas las patas de un envío.
type ExecutionReport struct {
	Success bool        `json:"success"` // true si al menos una pata entró
	Results []LegResult `json:"results"`
	Summary string      `json:"summary"`
}
