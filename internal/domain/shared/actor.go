package shared

import "github.com/google/uuid"

// Role identifies what a caller is allowed to do. Every authenticated request
// carries exactly one role; documents store the role next to the user ID so a
// counterpart can be addressed without runtime type inspection.
type Role string

const (
	RoleUser            Role = "user"
	RoleManager         Role = "manager"
	RoleWarehouseKeeper Role = "warehouse_keeper"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleManager, RoleWarehouseKeeper:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Actor is the tagged union of an authenticated identity and its role.
// The core trusts the ID and role as resolved by the auth middleware.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

// NewActor creates an actor from an ID and role
func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// IsZero reports whether the actor carries no identity
func (a Actor) IsZero() bool {
	return a.ID == uuid.Nil
}

// Is reports whether the actor holds the given role
func (a Actor) Is(role Role) bool {
	return a.Role == role
}
