package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserPatch carries the optional fields of a user update. Nil means "leave
// unchanged".
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *UserRole
	Status    *UserStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil && p.Role == nil && p.Status == nil
}

// UserFilter narrows a user listing. Nil fields do not filter.
type UserFilter struct {
	Role   *UserRole
	Status *UserStatus
	Limit  int
	Offset int
}
