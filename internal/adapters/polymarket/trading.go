package polymarket

// trading.go — Real order submission via Polymarket CLOB API.
//
// Implements ports.OrderExecutor using AuthClient for L1/L2 auth.
// All orders are placed as GTC (good-till-cancelled) limit orders.
// The CLOB has answered with at least three response shapes over time
// (top-level orderID, nested order.orderID, plain id); extractOrderID
// normalizes all of them so the core only ever sees domain.PlacedOrder.

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alejandrodnm/updown/internal/domain"
)

// clobOrderRequest is the JSON body sent to POST /order.
type clobOrderRequest struct {
	Order     clobOrderBody `json:"order"`
	Owner     string        `json:"owner"`
	OrderType string        `json:"orderType"`
}

type clobOrderBody struct {
	Salt          json.Number `json:"salt"`
	Maker         string      `json:"maker"`
	Signer        string      `json:"signer"`
	Taker         string      `json:"taker"`
	TokenID       string      `json:"tokenId"`
	MakerAmount   string      `json:"makerAmount"`
	TakerAmount   string      `json:"takerAmount"`
	Expiration    string      `json:"expiration"`
	Nonce         string      `json:"nonce"`
	FeeRateBps    string      `json:"feeRateBps"`
	Side          string      `json:"side"`
	SignatureType int         `json:"signatureType"`
	Signature     string      `json:"signature"`
}

// TradingClient implements ports.OrderExecutor.
type TradingClient struct {
	auth *AuthClient
}

// NewTradingClient creates a TradingClient over an authenticated client.
func NewTradingClient(auth *AuthClient) *TradingClient {
	return &TradingClient{auth: auth}
}

// PlaceOrder signs and submits a GTC limit order to the CLOB.
func (tc *TradingClient) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlacedOrder, error) {
	if err := tc.auth.EnsureCreds(ctx); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: creds: %w", err)
	}

	signed, err := tc.auth.buildSignedOrder(req.TokenID, req.Side, req.Price, req.Size)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: sign: %w", err)
	}

	body := clobOrderRequest{
		Order: clobOrderBody{
			Salt:          json.Number(signed.Order.Salt.String()),
			Maker:         signed.Order.Maker.Hex(),
			Signer:        signed.Order.Signer.Hex(),
			Taker:         signed.Order.Taker.Hex(),
			TokenID:       req.TokenID,
			MakerAmount:   signed.Order.MakerAmount.String(),
			TakerAmount:   signed.Order.TakerAmount.String(),
			Expiration:    signed.Order.Expiration.String(),
			Nonce:         signed.Order.Nonce.String(),
			FeeRateBps:    signed.Order.FeeRateBps.String(),
			Side:          req.Side,
			SignatureType: int(signed.Order.SignatureType.Int64()),
			Signature:     "0x" + hex.EncodeToString(signed.Signature),
		},
		Owner:     tc.auth.creds.APIKey,
		OrderType: "GTC",
	}

	var raw json.RawMessage
	if err := tc.auth.doL2(ctx, http.MethodPost, "/order", body, &raw); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: post: %w", err)
	}

	return normalizeOrderResponse(raw)
}

// clobOrderEnvelope covers the known response shapes of POST /order.
type clobOrderEnvelope struct {
	ErrorMsg string `json:"errorMsg"`
	OrderID  string `json:"orderID"`
	ID       string `json:"id"`
	Status   string `json:"status"`
	Success  *bool  `json:"success"`
	Order    *struct {
		OrderID string `json:"orderID"`
		ID      string `json:"id"`
		Status  string `json:"status"`
	} `json:"order"`
}

// normalizeOrderResponse reduces whatever shape the CLOB answered with
// to the single canonical domain.PlacedOrder.
func normalizeOrderResponse(raw json.RawMessage) (domain.PlacedOrder, error) {
	var env clobOrderEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: decode: %w", err)
	}

	if env.ErrorMsg != "" {
		return domain.PlacedOrder{}, fmt.Errorf("place order: clob error: %s", env.ErrorMsg)
	}
	if env.Success != nil && !*env.Success {
		return domain.PlacedOrder{}, fmt.Errorf("place order: clob rejected order")
	}

	placed := domain.PlacedOrder{OrderID: extractOrderID(env), Status: env.Status}
	if placed.Status == "" && env.Order != nil {
		placed.Status = env.Order.Status
	}
	if placed.OrderID == "" {
		placed.OrderID = "N/A"
	}
	return placed, nil
}

func extractOrderID(env clobOrderEnvelope) string {
	if env.OrderID != "" {
		return env.OrderID
	}
	if env.Order != nil {
		if env.Order.OrderID != "" {
			return env.Order.OrderID
		}
		if env.Order.ID != "" {
			return env.Order.ID
		}
	}
	return env.ID
}
