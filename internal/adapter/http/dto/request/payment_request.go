package request

import "brightworks/internal/usecase"

// PaymentRequest submits a charge, optionally linked to a quote.
type PaymentRequest struct {
	QuoteID       string  `json:"quote_id"`
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method" binding:"required"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Notes         string  `json:"notes"`
}

func (r PaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		QuoteID:       r.QuoteID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Method:        r.Method,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}
