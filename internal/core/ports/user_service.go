package ports

import (
	"context"
	"time"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// CreateUserInput carries the fields for registering or creating a user.
// Password is plaintext here and hashed by the service before it reaches
// persistence.
type CreateUserInput struct {
	Email          *string
	Password       *string
	FirstName      string
	LastName       string
	Role           *domain.Role
	PassportNumber *string
	Nationality    *string
	DateOfBirth    *time.Time
	ContactNumber  *string
	Gender         *string
}

// UpdateUserInput carries the sparse optional fields for a partial update.
type UpdateUserInput struct {
	Email          *string
	Password       *string
	FirstName      *string
	LastName       *string
	PassportNumber *string
	Nationality    *string
	DateOfBirth    *time.Time
	ContactNumber  *string
	Gender         *string
}

// UserService implements the admin-facing user CRUD.
type UserService interface {
	List(ctx context.Context, page, limit int64) ([]*domain.User, int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update applies a partial update and returns the refreshed user.
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	// Delete removes the user unless dependent tickets exist.
	Delete(ctx context.Context, id int64) error
}
