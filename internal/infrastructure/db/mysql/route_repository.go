package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

const routeColumns = "route_id, origin, destination, distance, estimated_duration"

// RouteRepository is the MySQL implementation of ports.RouteRepository.
type RouteRepository struct {
	db *sqlx.DB
}

func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) List(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error) {
	offset := (page - 1) * limit

	routes := []*domain.Route{}
	err := r.db.SelectContext(ctx, &routes,
		"SELECT "+routeColumns+" FROM routes ORDER BY route_id LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, 0, translate(err, "route not found")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM routes"); err != nil {
		return nil, 0, translate(err, "route not found")
	}
	return routes, total, nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id int64) (*domain.Route, error) {
	var route domain.Route
	err := r.db.GetContext(ctx, &route,
		"SELECT "+routeColumns+" FROM routes WHERE route_id = ?", id)
	if err != nil {
		return nil, translate(err, "route not found")
	}
	return &route, nil
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO routes (origin, destination, distance, estimated_duration)
		VALUES (?, ?, ?, ?)`,
		route.Origin, route.Destination, route.Distance, route.EstimatedDuration)
	if err != nil {
		return 0, translate(err, "route not found")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, translate(err, "route not found")
	}
	return id, nil
}

// Update mirrors UserRepository.Update: existence check and dynamic statement
// run in one transaction, zero present fields short-circuit to false.
func (r *RouteRepository) Update(ctx context.Context, id int64, fields ports.UpdateRouteFields) (bool, error) {
	var b updateBuilder
	if fields.Origin != nil {
		b.set("origin", *fields.Origin)
	}
	if fields.Destination != nil {
		b.set("destination", *fields.Destination)
	}
	if fields.Distance != nil {
		b.set("distance", *fields.Distance)
	}
	if fields.EstimatedDuration != nil {
		b.set("estimated_duration", *fields.EstimatedDuration)
	}
	if b.empty() {
		return false, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, translate(err, "route not found")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM routes WHERE route_id = ?", id); err != nil {
		return false, translate(err, "route not found")
	}

	stmt, args := b.query("routes", "route_id", id)
	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return false, translate(err, "route not found")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "route not found")
	}

	if err := tx.Commit(); err != nil {
		return false, translate(err, "route not found")
	}
	return affected > 0, nil
}

func (r *RouteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM routes WHERE route_id = ?", id)
	if err != nil {
		return false, translate(err, "route not found")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "route not found")
	}
	return affected > 0, nil
}

func (r *RouteRepository) CountFlights(ctx context.Context, routeID int64) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM flights WHERE route_id = ?", routeID)
	if err != nil {
		return 0, translate(err, "route not found")
	}
	return n, nil
}
