package entities

import "time"

// PaymentStatus represents the settlement state of a payment.
//
// Recording takes the gateway-reported status verbatim; the ledger never
// infers success. Admin corrections may move a payment between any two
// statuses (chargebacks and refunds happen from any prior state).

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is one of the known statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment is a ledger entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (user_id-index): user_id
//
// Payments are append-only: admin status corrections are the only
// mutation, and entries are never deleted (audit trail).

type Payment struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	UserID        string        `json:"user_id"`
	QuoteID       string        `json:"quote_id,omitempty"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
