package user

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the account rows issued by the auth service. This module
// only reads them to resolve the caller and resource ownership.
type User struct {
	id        uuid.UUID
	email     Email
	role      Role
	isActive  bool
	createdAt time.Time
}

func ReconstructUser(id uuid.UUID, email Email, role Role, isActive bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

// CanManage reports whether an actor may act on the resources, expenses
// and ledger of ownerID. Admins manage everything.
func CanManage(actorID uuid.UUID, role Role, ownerID uuid.UUID) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleOwner:
		return actorID == ownerID
	case RoleCustomer:
		return false
	default:
		return false
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
