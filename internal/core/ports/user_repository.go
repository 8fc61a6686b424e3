package ports

import (
	"context"
	"time"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// UpdateUserFields is the sparse field set for a partial user update. Each
// field is independently present (non-nil) or absent. PasswordHash must
// already be hashed by the caller; the persistence layer never sees raw
// secrets.
type UpdateUserFields struct {
	Email          *string
	PasswordHash   *string
	FirstName      *string
	LastName       *string
	PassportNumber *string
	Nationality    *string
	DateOfBirth    *time.Time
	ContactNumber  *string
	Gender         *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// List returns a page of users ordered by last name, first name, plus
	// the total count.
	List(ctx context.Context, page, limit int64) ([]*domain.User, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail and FindByPhone return the user including the password
	// hash, for credential verification.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	// EmailExists reports whether another user already holds the email.
	// excludeID 0 means no exclusion.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	PassportExists(ctx context.Context, passport string, excludeID int64) (bool, error)
	// Create inserts the user and returns the generated identifier.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// Update applies the present fields to the row and reports whether at
	// least one row was affected. Zero present fields is a no-op reporting
	// false without issuing a statement.
	Update(ctx context.Context, id int64, fields UpdateUserFields) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CountTickets returns the number of tickets referencing the user,
	// used to block deletion while dependents exist.
	CountTickets(ctx context.Context, userID int64) (int64, error)
}
