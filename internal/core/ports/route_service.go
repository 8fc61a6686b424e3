package ports

import (
	"context"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// CreateRouteInput carries the fields for creating a route.
type CreateRouteInput struct {
	Origin            string
	Destination       string
	Distance          float64
	EstimatedDuration string
}

// UpdateRouteInput carries the sparse optional fields for a partial update.
type UpdateRouteInput struct {
	Origin            *string
	Destination       *string
	Distance          *float64
	EstimatedDuration *string
}

// RouteService implements the route CRUD.
type RouteService interface {
	List(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error)
	Get(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
	Update(ctx context.Context, id int64, input UpdateRouteInput) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}
