package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/password"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

const maxPageSize = 100

// UserService implements the admin-facing user CRUD.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int64) ([]*domain.User, int64, error) {
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.users.List(ctx, page, limit)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.FirstName == "" || isBlank(input.Email) || isBlank(input.Password) {
		return nil, domain.NewValidationError("please provide name, email and password")
	}

	user, err := createUser(ctx, s.users, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.UserID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if input.Email != nil {
		taken, err := s.users.EmailExists(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError("email already in use")
		}
	}
	if input.PassportNumber != nil {
		taken, err := s.users.PassportExists(ctx, *input.PassportNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError("passport number already in use")
		}
	}

	fields := ports.UpdateUserFields{
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PassportNumber: input.PassportNumber,
		Nationality:    input.Nationality,
		DateOfBirth:    input.DateOfBirth,
		ContactNumber:  input.ContactNumber,
		Gender:         input.Gender,
	}

	// Secrets are transformed before they reach the bind list: only the
	// hash crosses the persistence boundary.
	if input.Password != nil {
		hash, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		fields.PasswordHash = &hash
	}

	affected, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected {
		s.logger.Info().Int64("user_id", id).Msg("user updated")
	}

	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	tickets, err := s.users.CountTickets(ctx, id)
	if err != nil {
		return err
	}
	if tickets > 0 {
		return domain.NewConflictError("cannot delete user with existing tickets")
	}

	if _, err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func normalizePage(page, limit int64) (int64, int64, error) {
	if page < 1 || limit < 1 {
		return 0, 0, domain.NewValidationError("page and limit must be positive")
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, nil
}
