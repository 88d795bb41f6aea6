package domain

import "time"

// Clasificación binaria del sesgo de entrada de una wallet.
const (
	LeanLowPrice = "prefers low-price entries"
	LeanHighProb = "chases high-probability outcomes"
)

// WalletReport resume el comportamiento de trading de una dirección.
// Salida pura del analizador: sin side effects, nunca persistida.
type WalletReport struct {
	Wallet       string
	TotalRecords int // registros totales de activity, trades o no
	TradeCount   int // solo type == TRADE
	MarketCount  int // mercados distintos (por slug) con trades

	Outcomes   []OutcomeStat
	PriceBands []PriceBand
	Windows    []WindowStat
	Notional   NotionalStats

	BuyCount      int
	SellCount     int
	AvgBuyPrice   float64
	BuysBelowHalf int    // compras con precio < 0.50
	Lean          string // LeanLowPrice | LeanHighProb; vacío sin compras

	Recent []ActivityRecord // los 20 trades más recientes
}

// OutcomeStat es el tally de trades por valor de outcome.
type OutcomeStat struct {
	Outcome   string
	Count     int
	TotalSize float64
	TotalCost float64
}

// PriceBand es una banda fija de precios de compra de ancho 0.1.
type PriceBand struct {
	Label     string // "0.00-0.09" … "0.80-0.89", "0.90+"
	Count     int
	TotalCost float64
}

// WindowStat agrega los trades de una ventana de 15 minutos.
type WindowStat struct {
	Key       string // timestamp epoch extraído del slug
	Start     time.Time
	Trades    int
	TotalCost float64
	Outcomes  []string // outcomes distintos operados en la ventana, ordenados
}

// NotionalStats son los estadísticos descriptivos del notional por trade.
type NotionalStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Sum    float64
}
