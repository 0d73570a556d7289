package interfaces

import (
	"context"

	"brightworks/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The workflow needs to:
//   - create a quote from the public request form
//   - resolve quotes by id, reference number and owner
//   - update status (approval/rejection) and mark conversion
//
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByReferenceNumber(ctx context.Context, ref string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	ListAll(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	MarkConverted(ctx context.Context, id string, projectID string) (entities.Quote, error)
}
