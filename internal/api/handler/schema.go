package handler

import (
	"time"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

type registerRequest struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	PassportNumber *string `json:"passport_number,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginPhoneRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	Role           *string `json:"role,omitempty" validate:"omitempty,oneof=admin worker user"`
	PassportNumber *string `json:"passport_number,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type updateUserRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Password       *string `json:"password,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type createRouteRequest struct {
	Origin            string  `json:"origin" validate:"required"`
	Destination       string  `json:"destination" validate:"required"`
	Distance          float64 `json:"distance" validate:"required,gt=0"`
	EstimatedDuration string  `json:"estimated_duration" validate:"required"`
}

type updateRouteRequest struct {
	Origin            *string  `json:"origin,omitempty"`
	Destination       *string  `json:"destination,omitempty"`
	Distance          *float64 `json:"distance,omitempty" validate:"omitempty,gt=0"`
	EstimatedDuration *string  `json:"estimated_duration,omitempty"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Data    *domain.User `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

type listResponse struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination pagination `json:"pagination"`
	Data       any        `json:"data"`
}

func newListResponse(data any, count int, page, limit, total int64) listResponse {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return listResponse{
		Success: true,
		Count:   count,
		Pagination: pagination{
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			TotalItems: total,
		},
		Data: data,
	}
}

// parseDate converts an optional "YYYY-MM-DD" string into a time pointer.
func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.NewValidationError("date_of_birth must use the YYYY-MM-DD format")
	}
	return &t, nil
}

// parseRole converts an optional role string, trusting the validator's oneof.
func parseRole(s *string) (*domain.Role, error) {
	if s == nil {
		return nil, nil
	}
	role, err := domain.ParseRole(*s)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r registerRequest) toInput() (ports.CreateUserInput, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return ports.CreateUserInput{}, err
	}
	return ports.CreateUserInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          &r.Email,
		Password:       &r.Password,
		PassportNumber: r.PassportNumber,
		Nationality:    r.Nationality,
		DateOfBirth:    dob,
		ContactNumber:  r.ContactNumber,
		Gender:         r.Gender,
	}, nil
}

func (r createUserRequest) toInput() (ports.CreateUserInput, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return ports.CreateUserInput{}, err
	}
	role, err := parseRole(r.Role)
	if err != nil {
		return ports.CreateUserInput{}, err
	}
	return ports.CreateUserInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          &r.Email,
		Password:       &r.Password,
		Role:           role,
		PassportNumber: r.PassportNumber,
		Nationality:    r.Nationality,
		DateOfBirth:    dob,
		ContactNumber:  r.ContactNumber,
		Gender:         r.Gender,
	}, nil
}

func (r updateUserRequest) toInput() (ports.UpdateUserInput, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return ports.UpdateUserInput{}, err
	}
	return ports.UpdateUserInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Password:       r.Password,
		PassportNumber: r.PassportNumber,
		Nationality:    r.Nationality,
		DateOfBirth:    dob,
		ContactNumber:  r.ContactNumber,
		Gender:         r.Gender,
	}, nil
}
