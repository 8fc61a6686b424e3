package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/api/metrics"
	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

// RouteService implements the route CRUD with a read-through cache on by-id
// lookups.
type RouteService struct {
	routes ports.RouteRepository
	cache  ports.RouteCache
	logger zerolog.Logger
}

// NewRouteService creates a RouteService. cache may be nil, in which case
// every lookup goes to the repository.
func NewRouteService(routes ports.RouteRepository, cache ports.RouteCache, logger zerolog.Logger) *RouteService {
	return &RouteService{routes: routes, cache: cache, logger: logger}
}

func (s *RouteService) List(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error) {
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.routes.List(ctx, page, limit)
}

func (s *RouteService) Get(ctx context.Context, id int64) (*domain.Route, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("route_id", id).Msg("route cache read failed")
		} else if cached != nil {
			metrics.RouteCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.RouteCacheTotal.WithLabelValues("miss").Inc()
	}

	route, err := s.routes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, route); err != nil {
			s.logger.Warn().Err(err).Int64("route_id", id).Msg("route cache write failed")
		}
	}
	return route, nil
}

func (s *RouteService) Create(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error) {
	if input.Origin == "" || input.Destination == "" || input.EstimatedDuration == "" || input.Distance <= 0 {
		return nil, domain.NewValidationError("please provide origin, destination, distance and estimated duration")
	}

	id, err := s.routes.Create(ctx, &domain.Route{
		Origin:            input.Origin,
		Destination:       input.Destination,
		Distance:          input.Distance,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("route_id", id).Str("origin", input.Origin).Str("destination", input.Destination).Msg("route created")
	return s.routes.FindByID(ctx, id)
}

func (s *RouteService) Update(ctx context.Context, id int64, input ports.UpdateRouteInput) (*domain.Route, error) {
	if _, err := s.routes.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if input.Distance != nil && *input.Distance <= 0 {
		return nil, domain.NewValidationError("distance must be positive")
	}

	affected, err := s.routes.Update(ctx, id, ports.UpdateRouteFields{
		Origin:            input.Origin,
		Destination:       input.Destination,
		Distance:          input.Distance,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		return nil, err
	}
	if affected {
		s.invalidate(ctx, id)
		s.logger.Info().Int64("route_id", id).Msg("route updated")
	}

	return s.routes.FindByID(ctx, id)
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.routes.FindByID(ctx, id); err != nil {
		return err
	}

	flights, err := s.routes.CountFlights(ctx, id)
	if err != nil {
		return err
	}
	if flights > 0 {
		return domain.NewConflictError("cannot delete route with scheduled flights")
	}

	if _, err := s.routes.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Int64("route_id", id).Msg("route deleted")
	return nil
}

func (s *RouteService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("route_id", id).Msg("route cache invalidation failed")
	}
}
