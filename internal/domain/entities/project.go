package entities

import "time"

// ProjectStatus represents the delivery state of a project.

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is one of the known statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a client engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (client_id-index): client_id
//
// QuoteID is a soft reference: a project may be created directly by an
// admin without a quote, and a quote's ProjectID may dangle after a hard
// project delete. Readers must tolerate a missing target on either side.

type Project struct {
	ID          string        `json:"id"`
	ProjectName string        `json:"project_name"`
	ClientID    string        `json:"client_id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	QuoteID     string        `json:"quote_id,omitempty"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	Deadline    string        `json:"deadline"`
	TotalAmount float64       `json:"total_amount"`
	Status      ProjectStatus `json:"status"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
