package ports

import (
	"context"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// UpdateRouteFields is the sparse field set for a partial route update.
type UpdateRouteFields struct {
	Origin            *string
	Destination       *string
	Distance          *float64
	EstimatedDuration *string
}

// RouteRepository defines persistence operations for flight routes.
type RouteRepository interface {
	List(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) (int64, error)
	Update(ctx context.Context, id int64, fields UpdateRouteFields) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CountFlights returns the number of flights scheduled on the route.
	CountFlights(ctx context.Context, routeID int64) (int64, error)
}

// RouteCache is a read-through cache for route lookups. A miss is (nil, nil).
type RouteCache interface {
	Get(ctx context.Context, id int64) (*domain.Route, error)
	Set(ctx context.Context, route *domain.Route) error
	Invalidate(ctx context.Context, id int64) error
}
