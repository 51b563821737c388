package domain

import "github.com/google/uuid"

// Actor is the identity on whose behalf a core operation runs.
// It is derived once per request by the transport layer and passed
// explicitly into every service call.
type Actor struct {
	UserID uuid.UUID
	Admin  bool
}

// NewActor returns an Actor for the given user.
func NewActor(userID uuid.UUID, admin bool) Actor {
	return Actor{UserID: userID, Admin: admin}
}

// IsAnonymous reports whether the actor carries no user identity.
func (a Actor) IsAnonymous() bool { return a.UserID == uuid.Nil }

// CanAccess reports whether the actor may read or mutate a resource owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	if a.IsAnonymous() {
		return false
	}
	return a.Admin || a.UserID == ownerID
}

// SystemUserID identifies maintenance jobs that run outside any session.
// No user row carries it.
var SystemUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SystemActor returns the admin actor used by maintenance commands.
func SystemActor() Actor { return NewActor(SystemUserID, true) }
