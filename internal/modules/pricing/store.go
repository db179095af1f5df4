// README: Route price store backed by PostgreSQL.
package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListRoutes returns every historical route price observation.
func (s *Store) ListRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
        SELECT from_region, to_region, price
        FROM direction_prices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.From, &r.To, &r.Price); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}
