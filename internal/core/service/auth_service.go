package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/password"
	"github.com/airlinehq/airline-api/internal/core/ports"
	"github.com/airlinehq/airline-api/internal/token"
)

// AuthService implements registration and the email/phone login flows.
type AuthService struct {
	users  ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
	if input.FirstName == "" || isBlank(input.Email) || isBlank(input.Password) {
		return "", nil, domain.NewValidationError("please provide name, email and password")
	}

	user, err := createUser(ctx, s.users, input)
	if err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Issue(user.UserID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.UserID).Str("role", string(user.Role)).Msg("user registered")
	return signed, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.NewValidationError("please provide email and password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	return s.finishLogin(ctx, user, pass)
}

// LoginPhone authenticates against the contact number column. The schema has
// no dedicated phone column; the contact number serves as the phone identity.
func (s *AuthService) LoginPhone(ctx context.Context, phone, pass string) (string, *domain.User, error) {
	if phone == "" || pass == "" {
		return "", nil, domain.NewValidationError("please provide phone and password")
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return "", nil, err
	}

	return s.finishLogin(ctx, user, pass)
}

func (s *AuthService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.users.FindByID(ctx, identity.UserID)
}

func (s *AuthService) finishLogin(ctx context.Context, user *domain.User, pass string) (string, *domain.User, error) {
	if user.PasswordHash == nil {
		return "", nil, domain.NewAuthError("no password set for this user")
	}

	ok, err := password.Verify(pass, *user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		s.logger.Info().Int64("user_id", user.UserID).Msg("login rejected")
		return "", nil, domain.NewAuthError("invalid credentials")
	}

	signed, err := s.codec.Issue(user.UserID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.UserID).Msg("login succeeded")
	return signed, user, nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

// createUser runs the uniqueness checks, hashes the password and inserts the
// row. Shared by registration and the admin create operation.
func createUser(ctx context.Context, users ports.UserRepository, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email != nil {
		taken, err := users.EmailExists(ctx, *input.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError("email already in use")
		}
	}
	if input.PassportNumber != nil {
		taken, err := users.PassportExists(ctx, *input.PassportNumber, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError("passport number already in use")
		}
	}

	role := domain.RoleUser
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.NewValidationError("unknown role: " + string(*input.Role))
		}
		role = *input.Role
	}

	var hash *string
	if input.Password != nil {
		h, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}

	id, err := users.Create(ctx, &domain.User{
		Email:          input.Email,
		PasswordHash:   hash,
		Role:           role,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PassportNumber: input.PassportNumber,
		Nationality:    input.Nationality,
		DateOfBirth:    input.DateOfBirth,
		ContactNumber:  input.ContactNumber,
		Gender:         input.Gender,
	})
	if err != nil {
		return nil, err
	}

	return users.FindByID(ctx, id)
}
