package request

import "brightworks/internal/usecase"

// ProjectRequest is a direct admin project creation (no quote).
type ProjectRequest struct {
	ProjectName string  `json:"project_name" binding:"required"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	Deadline    string  `json:"deadline"`
	TotalAmount float64 `json:"total_amount"`
	Notes       string  `json:"notes"`
}

func (r ProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		ProjectName: r.ProjectName,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Description: r.Description,
		StartDate:   r.StartDate,
		Deadline:    r.Deadline,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}
}

// StatusRequest is a bare status patch, shared by project and payment
// correction endpoints.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
