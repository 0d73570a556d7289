package response

import (
	"time"

	"brightworks/internal/domain/entities"
)

type QuoteResponse struct {
	ID                     string    `json:"id"`
	ReferenceNumber        string    `json:"reference_number"`
	UserID                 string    `json:"user_id"`
	ContactName            string    `json:"contact_name,omitempty"`
	ContactEmail           string    `json:"contact_email,omitempty"`
	Phone                  string    `json:"phone,omitempty"`
	Company                string    `json:"company,omitempty"`
	ServiceCategory        string    `json:"service_category"`
	ServiceType            string    `json:"service_type,omitempty"`
	EstimatedBudget        string    `json:"estimated_budget,omitempty"`
	ProjectDescription     string    `json:"project_description,omitempty"`
	Timeline               string    `json:"timeline,omitempty"`
	AdditionalRequirements string    `json:"additional_requirements,omitempty"`
	Amount                 float64   `json:"amount"`
	Status                 string    `json:"status"`
	ProjectID              string    `json:"project_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                     q.ID,
		ReferenceNumber:        q.ReferenceNumber,
		UserID:                 q.UserID,
		ContactName:            q.ContactName,
		ContactEmail:           q.ContactEmail,
		Phone:                  q.Phone,
		Company:                q.Company,
		ServiceCategory:        q.ServiceCategory,
		ServiceType:            q.ServiceType,
		EstimatedBudget:        q.EstimatedBudget,
		ProjectDescription:     q.ProjectDescription,
		Timeline:               q.Timeline,
		AdditionalRequirements: q.AdditionalRequirements,
		Amount:                 q.Amount,
		Status:                 string(q.Status),
		ProjectID:              q.ProjectID,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
