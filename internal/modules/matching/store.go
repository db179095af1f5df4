// README: Driver profile store backed by PostgreSQL and Redis GEO.
package matching

import (
	"context"
	"database/sql"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"karvon/internal/types"
)

const driverGeoKey = "matching:drivers"

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// ListProfiles joins vehicles and users for active drivers and attaches the
// last known position from the GEO set. Rows without a usable capacity are
// skipped at load time. Position lookup is best effort: a GEO failure
// degrades to profiles without coordinates rather than failing the request.
func (s *Store) ListProfiles(ctx context.Context) ([]DriverProfile, error) {
	rows, err := s.db.Query(ctx, `
        SELECT u.user_id, u.fullname, u.phone,
               v.transport_model, v.transport_weight, v.transport_volume
        FROM vehicles v
        JOIN users u ON u.user_id = v.user_id
        WHERE u.status = 'active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []DriverProfile
	for rows.Next() {
		var p DriverProfile
		var weight, volume sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.FullName, &p.Phone, &p.TransportModel, &weight, &volume); err != nil {
			return nil, err
		}
		if !weight.Valid || !volume.Valid {
			continue
		}
		p.Weight = weight.Float64
		p.Volume = volume.Float64
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.attachPositions(ctx, profiles)
	return profiles, nil
}

// UpdateLocation records a driver's live position in the GEO set.
func (s *Store) UpdateLocation(ctx context.Context, id types.ID, pos types.Point) error {
	return s.redis.GeoAdd(ctx, driverGeoKey, &redis.GeoLocation{
		Name:      string(id),
		Longitude: pos.Lng,
		Latitude:  pos.Lat,
	}).Err()
}

func (s *Store) attachPositions(ctx context.Context, profiles []DriverProfile) {
	if len(profiles) == 0 {
		return
	}
	members := make([]string, len(profiles))
	for i, p := range profiles {
		members[i] = string(p.ID)
	}
	positions, err := s.redis.GeoPos(ctx, driverGeoKey, members...).Result()
	if err != nil {
		log.Printf("matching: geo position lookup failed: %v", err)
		return
	}
	for i, pos := range positions {
		if pos == nil {
			continue
		}
		profiles[i].Position = types.Point{Lat: pos.Latitude, Lng: pos.Longitude}
		profiles[i].HasPosition = true
	}
}
