package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"brightworks/internal/domain/entities"
	"brightworks/internal/domain/stats"
	"brightworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayFailure       = errors.New("payment gateway failure")
)

// RecordPaymentInput is a charge request against an optional quote.
type RecordPaymentInput struct {
	QuoteID       string
	Amount        float64
	Currency      string
	Method        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

// Balance is the reconciliation view of a single quote.
type Balance struct {
	QuoteID     string  `json:"quote_id"`
	Amount      float64 `json:"amount"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
}

// IPaymentUseCase encapsulates the payment ledger.
//
// Recording is append-only and gateway-authoritative: the entry's status
// is whatever the provider reported, never inferred. Admin corrections
// may set any status; dependent revenue figures are recomputed from
// scratch by the aggregation layer, so no incremental bookkeeping exists
// to invalidate here.
//
//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

type IPaymentUseCase interface {
	Record(ctx context.Context, actor entities.Actor, input RecordPaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	QuoteBalance(ctx context.Context, quoteID string) (Balance, error)
	SetStatus(ctx context.Context, actor entities.Actor, paymentID string, status entities.PaymentStatus) (entities.Payment, error)
	ListForQuote(ctx context.Context, quoteID string) ([]entities.Payment, error)
	ListForUser(ctx context.Context, userID string) ([]entities.Payment, error)
	ListAll(ctx context.Context, actor entities.Actor) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

// Record submits the charge to the gateway and appends a ledger entry
// with the reported outcome. Nothing is written when the gateway call
// itself fails.
func (u *PaymentUseCase) Record(ctx context.Context, actor entities.Actor, input RecordPaymentInput) (entities.Payment, error) {
	input.QuoteID = strings.TrimSpace(input.QuoteID)
	log.Printf("[payment][usecase] record start quote_id=%q amount=%.2f method=%s", input.QuoteID, input.Amount, input.Method)

	if input.Amount <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	description := "Payment"
	if input.QuoteID != "" {
		// Soft reference: a missing quote does not block the charge, the
		// link just stays unverified in the audit trail.
		q, err := u.quoteRepo.GetByID(ctx, input.QuoteID)
		if err != nil {
			return entities.Payment{}, err
		}
		if q.ID != "" {
			description = fmt.Sprintf("Quote %s", q.ReferenceNumber)
		} else {
			log.Printf("[payment][usecase] quote reference not found quote_id=%s", input.QuoteID)
		}
	}

	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = "USD"
	}

	transactionID, providerStatus, _, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
		Amount:      input.Amount,
		Currency:    currency,
		Method:      input.Method,
		Description: description,
		PayerEmail:  input.CustomerEmail,
		Reference:   input.QuoteID,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed quote_id=%s err=%v", input.QuoteID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	status := normalizeProviderStatus(providerStatus)
	log.Printf("[payment][usecase] gateway charge done transaction_id=%s provider_status=%s status=%s", transactionID, providerStatus, status)

	now := time.Now().UTC()
	p := entities.Payment{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		UserID:        actor.ID,
		QuoteID:       input.QuoteID,
		Amount:        input.Amount,
		Currency:      currency,
		Method:        strings.TrimSpace(input.Method),
		Status:        status,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] ledger append failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] record success payment_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

// normalizeProviderStatus folds provider status vocabularies onto the
// ledger's domain. Unknown strings are treated as failed rather than
// optimistically completed.
func normalizeProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited", "completed", "success":
		return entities.PaymentStatusCompleted
	case "pending", "in_process", "authorized":
		return entities.PaymentStatusPending
	default:
		return entities.PaymentStatusFailed
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// QuoteBalance reports amount paid and outstanding for one quote.
// Outstanding never goes negative: overpayment reads as 0, the UI must
// not imply an automatic refund.
func (u *PaymentUseCase) QuoteBalance(ctx context.Context, quoteID string) (Balance, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return Balance{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return Balance{}, err
	}
	if q.ID == "" {
		return Balance{}, ErrQuoteNotFound
	}

	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return Balance{}, err
	}
	return Balance{
		QuoteID:     quoteID,
		Amount:      q.Amount,
		Paid:        stats.AmountPaid(quoteID, payments),
		Outstanding: stats.AmountOutstanding(q, payments),
	}, nil
}

// SetStatus applies an admin correction. Unlike quotes there is no
// transition graph: refunds and chargebacks can follow any prior state.
func (u *PaymentUseCase) SetStatus(ctx context.Context, actor entities.Actor, paymentID string, status entities.PaymentStatus) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if !actor.IsAdmin() {
		return entities.Payment{}, ErrActorForbidden
	}
	if !entities.ValidPaymentStatus(status) {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	current, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if current.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if current.Status == entities.PaymentStatusCompleted && status != entities.PaymentStatusCompleted {
		// Revenue figures derived from this entry change on the next
		// dashboard recompute; worth an audit line.
		log.Printf("[payment][usecase] correction away from completed payment_id=%s new_status=%s", paymentID, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}

func (u *PaymentUseCase) ListForQuote(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *PaymentUseCase) ListForUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidPaymentID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *PaymentUseCase) ListAll(ctx context.Context, actor entities.Actor) ([]entities.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrActorForbidden
	}
	return u.repo.ListAll(ctx)
}
