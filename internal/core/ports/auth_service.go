package ports

import (
	"context"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// AuthService implements registration, login and current-user lookup.
type AuthService interface {
	// Register creates an account (role defaults to user) and returns a
	// freshly issued token together with the created user.
	Register(ctx context.Context, input CreateUserInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// LoginPhone authenticates against the contact number.
	LoginPhone(ctx context.Context, phone, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error)
}
