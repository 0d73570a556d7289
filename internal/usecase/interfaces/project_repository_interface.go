package interfaces

import (
	"context"

	"brightworks/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// GetByQuoteID resolves the soft back-reference used by the conversion
// service's duplicate-creation guard; a missing project is a zero value,
// not an error.
//
//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_mock.go -package=mock_interfaces

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
