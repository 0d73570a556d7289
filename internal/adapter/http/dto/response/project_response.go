package response

import (
	"time"

	"brightworks/internal/domain/entities"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	ClientID    string    `json:"client_id,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	ClientEmail string    `json:"client_email,omitempty"`
	QuoteID     string    `json:"quote_id,omitempty"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	Deadline    string    `json:"deadline,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
		QuoteID:     p.QuoteID,
		Description: p.Description,
		StartDate:   p.StartDate,
		Deadline:    p.Deadline,
		TotalAmount: p.TotalAmount,
		Status:      string(p.Status),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
