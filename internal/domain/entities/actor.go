package entities

// ActorRole scopes who may invoke an operation. Authentication itself is
// external; callers pass the resolved identity explicitly so the
// lifecycle managers stay testable without a simulated session.

type ActorRole string

const (
	RoleClient    ActorRole = "client"
	RoleAdmin     ActorRole = "admin"
	RoleAnonymous ActorRole = "anonymous"
)

type Actor struct {
	ID   string    `json:"id"`
	Role ActorRole `json:"role"`
}

// IsAdmin reports whether the actor may perform admin-only mutations.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
