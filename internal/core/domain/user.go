package domain

import "time"

// Role is the closed set of actor roles. Authorization decisions are
// set-membership checks against per-route-group allowed sets; there is no
// implicit hierarchy between roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
	RoleUser   Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker, RoleUser:
		return true
	}
	return false
}

// ParseRole converts a claim or payload string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", NewValidationError("unknown role: " + s)
	}
	return r, nil
}

// Identity is the authenticated principal extracted from a verified token.
// It carries exactly what authorization needs and nothing more.
type Identity struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// User models an account in the system. PasswordHash is write-only: it is set
// through the password package and never serialized outward.
type User struct {
	UserID         int64      `db:"user_id" json:"user_id"`
	Email          *string    `db:"email" json:"email"`
	PasswordHash   *string    `db:"password" json:"-"`
	Role           Role       `db:"role" json:"role"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	PassportNumber *string    `db:"passport_number" json:"passport_number"`
	Nationality    *string    `db:"nationality" json:"nationality"`
	DateOfBirth    *time.Time `db:"date_of_birth" json:"date_of_birth"`
	ContactNumber  *string    `db:"contact_number" json:"contact_number"`
	Gender         *string    `db:"gender" json:"gender"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
