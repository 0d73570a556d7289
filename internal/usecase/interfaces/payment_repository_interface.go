package interfaces

import (
	"context"

	"brightworks/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The ledger is append-only: UpdateStatus is the only mutation and there
// is no delete (audit trail).
//
//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ListAll(ctx context.Context) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
