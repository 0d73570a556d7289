package entities

import "time"

// QuoteStatus represents the lifecycle of a quote request.
//
// Domain notes:
//   - Quotes are created pending by the public request form.
//   - Only an admin actor moves a quote to approved/rejected.
//   - "converted" is set by the conversion service together with ProjectID.
//
// Allowed transitions: pending->approved, pending->rejected,
// approved->converted. rejected and converted are terminal.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusConverted QuoteStatus = "converted"
)

// quoteTransitions is the full admin-reachable transition graph.
// approved->converted is intentionally absent: that edge belongs to the
// conversion service, not to a direct status change.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending: {QuoteStatusApproved, QuoteStatusRejected},
}

// CanTransition reports whether a direct status change from->to is allowed.
func (s QuoteStatus) CanTransition(to QuoteStatus) bool {
	for _, next := range quoteTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Quote is a quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_number-index): reference_number
//   - GSI2 (user_id-index): user_id
//
// Monetary representation:
//   - EstimatedBudget is the requester's free-text range (e.g. "$150 - $450").
//   - Amount is the agreed numeric total; derived from the budget range
//     at conversion time when absent.
//
// Invariant: ProjectID is set iff Status == converted.

type Quote struct {
	ID                     string      `json:"id"`
	ReferenceNumber        string      `json:"reference_number"`
	UserID                 string      `json:"user_id"`
	ContactName            string      `json:"contact_name"`
	ContactEmail           string      `json:"contact_email"`
	Phone                  string      `json:"phone"`
	Company                string      `json:"company"`
	ServiceCategory        string      `json:"service_category"`
	ServiceType            string      `json:"service_type"`
	EstimatedBudget        string      `json:"estimated_budget"`
	ProjectDescription     string      `json:"project_description"`
	Timeline               string      `json:"timeline"`
	AdditionalRequirements string      `json:"additional_requirements"`
	Amount                 float64     `json:"amount"`
	Status                 QuoteStatus `json:"status"`
	ProjectID              string      `json:"project_id,omitempty"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// AnonymousUserID marks quotes submitted without an authenticated owner.
const AnonymousUserID = "anonymous"
