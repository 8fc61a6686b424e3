package domain

// Route is a flight route between two airports.
type Route struct {
	RouteID           int64   `db:"route_id" json:"route_id"`
	Origin            string  `db:"origin" json:"origin"`
	Destination       string  `db:"destination" json:"destination"`
	Distance          float64 `db:"distance" json:"distance"`
	EstimatedDuration string  `db:"estimated_duration" json:"estimated_duration"`
}
