package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is the provider-agnostic charge the ledger submits.
type ChargeRequest struct {
	Amount      float64
	Currency    string
	Method      string
	Description string
	PayerEmail  string
	Reference   string // quote id, when the payment is linked to one
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The gateway is authoritative for the outcome: the ledger records the
// reported status verbatim and keeps the raw provider response only for
// logging. Provider status strings are normalized by the ledger.
//
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (transactionID string, providerStatus string, providerResponse json.RawMessage, err error)
}
