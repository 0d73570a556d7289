package request

import "brightworks/internal/usecase"

// QuoteRequest is the public quote-request form payload.
//
// contact_name is optional for authenticated submitters; the use case
// enforces that at least one of user_id/contact_name identifies the
// requester.
type QuoteRequest struct {
	UserID                 string  `json:"user_id"`
	ContactName            string  `json:"contact_name"`
	ContactEmail           string  `json:"contact_email"`
	Phone                  string  `json:"phone"`
	Company                string  `json:"company"`
	ServiceCategory        string  `json:"service_category" binding:"required"`
	ServiceType            string  `json:"service_type"`
	EstimatedBudget        string  `json:"estimated_budget"`
	ProjectDescription     string  `json:"project_description"`
	Timeline               string  `json:"timeline"`
	AdditionalRequirements string  `json:"additional_requirements"`
	Amount                 float64 `json:"amount"`
}

func (r QuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		UserID:                 r.UserID,
		ContactName:            r.ContactName,
		ContactEmail:           r.ContactEmail,
		Phone:                  r.Phone,
		Company:                r.Company,
		ServiceCategory:        r.ServiceCategory,
		ServiceType:            r.ServiceType,
		EstimatedBudget:        r.EstimatedBudget,
		ProjectDescription:     r.ProjectDescription,
		Timeline:               r.Timeline,
		AdditionalRequirements: r.AdditionalRequirements,
		Amount:                 r.Amount,
	}
}

// ConvertQuoteRequest carries optional project overrides for conversion.
// Absent fields keep the defaults derived from the quote.
type ConvertQuoteRequest struct {
	ProjectName string  `json:"project_name"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	Deadline    string  `json:"deadline"`
	TotalAmount float64 `json:"total_amount"`
	Notes       string  `json:"notes"`
}

func (r ConvertQuoteRequest) ToOverrides() usecase.ProjectOverrides {
	return usecase.ProjectOverrides{
		ProjectName: r.ProjectName,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Description: r.Description,
		StartDate:   r.StartDate,
		Deadline:    r.Deadline,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}
}
