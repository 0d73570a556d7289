package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrMissingContact         = errors.New("missing contact name or owning user")
	ErrMissingServiceCategory = errors.New("missing service category")
	ErrInvalidQuoteStatus     = errors.New("invalid quote status")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrActorForbidden         = errors.New("actor not allowed")
)

// CreateQuoteInput is the public quote-request form payload.
type CreateQuoteInput struct {
	UserID                 string
	ContactName            string
	ContactEmail           string
	Phone                  string
	Company                string
	ServiceCategory        string
	ServiceType            string
	EstimatedBudget        string
	ProjectDescription     string
	Timeline               string
	AdditionalRequirements string
	Amount                 float64
}

// IQuoteUseCase exposes quote lifecycle operations.
//
//   - public form submit => Create()
//   - admin approve/reject => SetStatus() (Approve/Reject shortcuts)
//   - portal listings => ListForUser/ListAll
//
// approved->converted is not reachable here; only the conversion service
// takes that edge.
//
//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

type IQuoteUseCase interface {
	Create(ctx context.Context, input CreateQuoteInput) (entities.Quote, error)
	SetStatus(ctx context.Context, actor entities.Actor, quoteID string, status entities.QuoteStatus) (entities.Quote, error)
	Approve(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error)
	Reject(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListForUser(ctx context.Context, userID string) ([]entities.Quote, error)
	ListAll(ctx context.Context, actor entities.Actor, status entities.QuoteStatus) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) Create(ctx context.Context, input CreateQuoteInput) (entities.Quote, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.ContactName = strings.TrimSpace(input.ContactName)
	input.ServiceCategory = strings.TrimSpace(input.ServiceCategory)

	if input.UserID == "" {
		input.UserID = entities.AnonymousUserID
	}
	if input.ContactName == "" && input.UserID == entities.AnonymousUserID {
		return entities.Quote{}, ErrMissingContact
	}
	if input.ServiceCategory == "" {
		return entities.Quote{}, ErrMissingServiceCategory
	}

	ref, err := u.allocateReferenceNumber(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                     uuid.NewString(),
		ReferenceNumber:        ref,
		UserID:                 input.UserID,
		ContactName:            input.ContactName,
		ContactEmail:           strings.TrimSpace(input.ContactEmail),
		Phone:                  strings.TrimSpace(input.Phone),
		Company:                strings.TrimSpace(input.Company),
		ServiceCategory:        input.ServiceCategory,
		ServiceType:            strings.TrimSpace(input.ServiceType),
		EstimatedBudget:        strings.TrimSpace(input.EstimatedBudget),
		ProjectDescription:     input.ProjectDescription,
		Timeline:               strings.TrimSpace(input.Timeline),
		AdditionalRequirements: input.AdditionalRequirements,
		Amount:                 input.Amount,
		Status:                 entities.QuoteStatusPending,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return u.repo.Create(ctx, q)
}

const (
	referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referenceLength   = 8
	referenceAttempts = 5
)

// allocateReferenceNumber draws short human-facing codes until one is
// free in the quote collection.
func (u *QuoteUseCase) allocateReferenceNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		ref, err := randomReference()
		if err != nil {
			return "", err
		}
		existing, err := u.repo.GetByReferenceNumber(ctx, ref)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return ref, nil
		}
	}
	return "", fmt.Errorf("reference number space exhausted after %d attempts", referenceAttempts)
}

func randomReference() (string, error) {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return "QR-" + string(buf), nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error) {
	return u.SetStatus(ctx, actor, quoteID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error) {
	return u.SetStatus(ctx, actor, quoteID, entities.QuoteStatusRejected)
}

// SetStatus applies an admin status change. The transition graph is
// exactly pending->approved and pending->rejected; everything else,
// including a direct jump to converted, is rejected with no writes.
func (u *QuoteUseCase) SetStatus(ctx context.Context, actor entities.Actor, quoteID string, status entities.QuoteStatus) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !actor.IsAdmin() {
		return entities.Quote{}, ErrActorForbidden
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !q.Status.CanTransition(status) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, quoteID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListForUser(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *QuoteUseCase) ListAll(ctx context.Context, actor entities.Actor, status entities.QuoteStatus) ([]entities.Quote, error) {
	if !actor.IsAdmin() {
		return nil, ErrActorForbidden
	}
	return u.repo.ListAll(ctx, status)
}
