package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrMissingProjectName   = errors.New("missing project name")
	ErrQuoteNotEligible     = errors.New("quote not eligible for conversion")
)

// PartialConversionError reports a conversion that created the project
// but failed to mark the quote converted. The orphan project id is
// carried so a retry can resume phase two without creating a duplicate.
type PartialConversionError struct {
	QuoteID   string
	ProjectID string
	Err       error
}

func (e *PartialConversionError) Error() string {
	return fmt.Sprintf("conversion of quote %s partially applied (project %s created): %v", e.QuoteID, e.ProjectID, e.Err)
}

func (e *PartialConversionError) Unwrap() error { return e.Err }

// ProjectOverrides are caller-supplied values layered over the defaults
// derived from the quote. Zero values keep the derived default.
type ProjectOverrides struct {
	ProjectName string
	ClientName  string
	ClientEmail string
	Description string
	StartDate   string
	Deadline    string
	TotalAmount float64
	Notes       string
}

// CreateProjectInput is a direct admin project creation (no quote).
type CreateProjectInput struct {
	ProjectName string
	ClientID    string
	ClientName  string
	ClientEmail string
	Description string
	StartDate   string
	Deadline    string
	TotalAmount float64
	Notes       string
}

// IProjectUseCase exposes project operations, including the quote
// conversion that links the two entities.
//
//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/project_usecase_mock.go -package=mocks

type IProjectUseCase interface {
	Convert(ctx context.Context, actor entities.Actor, quoteID string, overrides ProjectOverrides) (entities.Project, error)
	Create(ctx context.Context, actor entities.Actor, input CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetForQuote(ctx context.Context, quote entities.Quote) (entities.Project, bool, error)
	ListAll(ctx context.Context, actor entities.Actor) ([]entities.Project, error)
	ListForClient(ctx context.Context, clientID string) ([]entities.Project, error)
	SetStatus(ctx context.Context, actor entities.Actor, projectID string, status entities.ProjectStatus) (entities.Project, error)
	Delete(ctx context.Context, actor entities.Actor, projectID string) error
}

type ProjectUseCase struct {
	repo      interfaces.IProjectRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, quoteRepo interfaces.IQuoteRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, quoteRepo: quoteRepo}
}

// Convert materializes a project from an approved quote and marks the
// quote converted.
//
// The store has no multi-document transaction, so the two writes are an
// explicit two-phase protocol:
//  1. create the project (guarded against duplicates via quote_id-index)
//  2. flip the quote to converted with the new project id
//
// A phase-two failure surfaces as *PartialConversionError; re-invoking
// Convert finds the phase-one project and replays only phase two.
func (u *ProjectUseCase) Convert(ctx context.Context, actor entities.Actor, quoteID string, overrides ProjectOverrides) (entities.Project, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Project{}, ErrInvalidQuoteID
	}
	if !actor.IsAdmin() {
		return entities.Project{}, ErrActorForbidden
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Project{}, err
	}
	if q.ID == "" {
		return entities.Project{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved || q.ProjectID != "" {
		return entities.Project{}, fmt.Errorf("%w: status=%s", ErrQuoteNotEligible, q.Status)
	}

	// Phase-one guard: an earlier attempt may have created the project
	// already. Reuse it instead of creating a duplicate.
	project, err := u.repo.GetByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		project, err = u.repo.Create(ctx, projectFromQuote(q, overrides))
		if err != nil {
			return entities.Project{}, err
		}
	} else {
		log.Printf("[conversion][usecase] resuming partial conversion quote_id=%s project_id=%s", q.ID, project.ID)
	}

	if _, err := u.quoteRepo.MarkConverted(ctx, q.ID, project.ID); err != nil {
		return entities.Project{}, &PartialConversionError{QuoteID: q.ID, ProjectID: project.ID, Err: err}
	}
	return project, nil
}

func projectFromQuote(q entities.Quote, overrides ProjectOverrides) entities.Project {
	amount := q.Amount
	if amount == 0 {
		amount = BudgetRangeMax(q.EstimatedBudget)
	}
	if overrides.TotalAmount > 0 {
		amount = overrides.TotalAmount
	}

	name := overrides.ProjectName
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("%s - %s", q.ServiceCategory, q.ServiceType)
	}

	now := time.Now().UTC()
	return entities.Project{
		ID:          uuid.NewString(),
		ProjectName: name,
		ClientID:    q.UserID,
		ClientName:  firstNonEmpty(overrides.ClientName, q.ContactName),
		ClientEmail: firstNonEmpty(overrides.ClientEmail, q.ContactEmail),
		QuoteID:     q.ID,
		Description: firstNonEmpty(overrides.Description, q.ProjectDescription),
		StartDate:   overrides.StartDate,
		Deadline:    firstNonEmpty(overrides.Deadline, q.Timeline),
		TotalAmount: amount,
		Status:      entities.ProjectStatusPending,
		Notes:       overrides.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

var budgetRangePattern = regexp.MustCompile(`^\$([0-9][0-9,]*(?:\.[0-9]+)?)\s*-\s*\$([0-9][0-9,]*(?:\.[0-9]+)?)$`)

// BudgetRangeMax parses a "$<min> - $<max>" budget string and returns the
// upper bound. Anything else yields 0: budgets are money-shaped natural
// language, and an unparseable one must not block project creation.
func BudgetRangeMax(budget string) float64 {
	m := budgetRangePattern.FindStringSubmatch(strings.TrimSpace(budget))
	if m == nil {
		return 0
	}
	max, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return 0
	}
	return max
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (u *ProjectUseCase) Create(ctx context.Context, actor entities.Actor, input CreateProjectInput) (entities.Project, error) {
	if !actor.IsAdmin() {
		return entities.Project{}, ErrActorForbidden
	}
	if strings.TrimSpace(input.ProjectName) == "" {
		return entities.Project{}, ErrMissingProjectName
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		ProjectName: strings.TrimSpace(input.ProjectName),
		ClientID:    strings.TrimSpace(input.ClientID),
		ClientName:  strings.TrimSpace(input.ClientName),
		ClientEmail: strings.TrimSpace(input.ClientEmail),
		Description: input.Description,
		StartDate:   input.StartDate,
		Deadline:    input.Deadline,
		TotalAmount: input.TotalAmount,
		Status:      entities.ProjectStatusPending,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// GetForQuote dereferences a quote's ProjectID. The reference is soft: a
// hard-deleted project leaves it dangling, reported here as absent rather
// than an error.
func (u *ProjectUseCase) GetForQuote(ctx context.Context, quote entities.Quote) (entities.Project, bool, error) {
	if quote.ProjectID == "" {
		return entities.Project{}, false, nil
	}
	p, err := u.repo.GetByID(ctx, quote.ProjectID)
	if err != nil {
		return entities.Project{}, false, err
	}
	if p.ID == "" {
		log.Printf("[conversion][usecase] dangling project reference quote_id=%s project_id=%s", quote.ID, quote.ProjectID)
		return entities.Project{}, false, nil
	}
	return p, true, nil
}

func (u *ProjectUseCase) ListAll(ctx context.Context, actor entities.Actor) ([]entities.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrActorForbidden
	}
	return u.repo.ListAll(ctx)
}

func (u *ProjectUseCase) ListForClient(ctx context.Context, clientID string) ([]entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *ProjectUseCase) SetStatus(ctx context.Context, actor entities.Actor, projectID string, status entities.ProjectStatus) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !actor.IsAdmin() {
		return entities.Project{}, ErrActorForbidden
	}
	if !entities.ValidProjectStatus(status) {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, projectID, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// Delete removes a project document. No cascade: a quote pointing at the
// deleted project keeps its ProjectID, and readers treat it as dangling.
func (u *ProjectUseCase) Delete(ctx context.Context, actor entities.Actor, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if !actor.IsAdmin() {
		return ErrActorForbidden
	}
	return u.repo.Delete(ctx, projectID)
}
