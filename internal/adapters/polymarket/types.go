package polymarket

import (
	"encoding/json"
	"strconv"
)

// DTOs raw de las APIs de Polymarket. Solo se usan dentro de este paquete.
// La conversión a domain entities se hace en mapping.go.

// --- Gamma API ---

// gammaMarket es GET /markets/slug/{slug}. Gamma devuelve clobTokenIds y
// outcomePrices a veces como arrays JSON y a veces como strings con un
// array JSON dentro; jsonStrings/jsonFloats toleran ambas formas.
type gammaMarket struct {
	Question        string      `json:"question"`
	Slug            string      `json:"slug"`
	EndDate         string      `json:"endDate"`
	ClobTokenIDs    jsonStrings `json:"clobTokenIds"`
	OutcomePrices   jsonFloats  `json:"outcomePrices"`
	BestBid         json.Number `json:"bestBid"`
	BestAsk         json.Number `json:"bestAsk"`
	AcceptingOrders bool        `json:"acceptingOrders"`
	Active          bool        `json:"active"`
	Closed          bool        `json:"closed"`
}

// jsonStrings es un []string que acepta tanto ["a","b"] como "[\"a\",\"b\"]".
type jsonStrings []string

func (s *jsonStrings) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*s = direct
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	if encoded == "" {
		*s = nil
		return nil
	}
	return json.Unmarshal([]byte(encoded), (*[]string)(s))
}

// jsonFloats es un []float64 que acepta [0.3,0.7], ["0.3","0.7"] y
// "[\"0.3\", \"0.7\"]".
type jsonFloats []float64

func (f *jsonFloats) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if encoded == "" {
			*f = nil
			return nil
		}
		data = []byte(encoded)
	}

	var nums []json.Number
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}

	out := make([]float64, 0, len(nums))
	for _, n := range nums {
		v, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*f = out
	return nil
}

// --- Data API ---

// rawPosition es un item de GET /positions.
type rawPosition struct {
	Title      string      `json:"title"`
	Outcome    string      `json:"outcome"`
	Size       json.Number `json:"size"`
	AvgPrice   json.Number `json:"avgPrice"`
	CurPrice   json.Number `json:"curPrice"`
	Redeemable bool        `json:"redeemable"`
	Mergeable  bool        `json:"mergeable"`
}

// rawActivity es un item de GET /activity. Mezcla TRADE con otros tipos
// (SPLIT, MERGE, REDEEM); el filtrado es cosa del analizador.
type rawActivity struct {
	Type      string      `json:"type"`
	Side      string      `json:"side"`
	Outcome   string      `json:"outcome"`
	Price     json.Number `json:"price"`
	Size      json.Number `json:"size"`
	USDCSize  json.Number `json:"usdcSize"`
	Timestamp json.Number `json:"timestamp"`
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
}
