package domain

import "github.com/google/uuid"

// Role represents the authorization level of an actor.
type Role string

const (
	RoleContributor Role = "contributor"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleContributor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Actor is the identity performing an operation. It is passed explicitly into
// every service operation; the core never reads identity from ambient state.
// The role is trusted as given — credential verification happens in the
// transport layer before an Actor is ever constructed.
type Actor struct {
	ID     uuid.UUID
	Role   Role
	Handle string
}

// IsZero reports whether the actor carries no identity (anonymous caller).
func (a Actor) IsZero() bool {
	return a.ID == uuid.Nil
}

// ActorRef is the persisted reference to an actor: identity plus the display
// handle frozen at the time of the action.
type ActorRef struct {
	ID     uuid.UUID `json:"id"`
	Handle string    `json:"handle"`
}

// Ref returns the persistable reference for the actor.
func (a Actor) Ref() ActorRef {
	return ActorRef{ID: a.ID, Handle: a.Handle}
}
