package domain

import "time"

// ActivityTrade es el tipo de registro que cuenta como trade real;
// la Data API mezcla TRADE con splits, merges y redenciones.
const ActivityTrade = "TRADE"

// ActivityRecord es un registro histórico del endpoint /activity.
// Input externo read-only del analizador de wallets.
type ActivityRecord struct {
	Type      string
	Side      string // "BUY" | "SELL"
	Outcome   string
	Price     float64
	Size      float64
	USDCSize  float64 // notional en USDC
	Timestamp time.Time
	Slug      string
	Title     string
}

// IsTrade devuelve true si el registro es un trade real.
func (r ActivityRecord) IsTrade() bool {
	return r.Type == ActivityTrade
}
