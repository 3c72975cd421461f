package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"

	"github.com/google/uuid"
)

type stationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

const stationColumns = `id, name, location, address, total_slots, lat, lng, is_active, created_on, updated_on`

func (r *stationRepository) Create(ctx context.Context, s *domain.Station) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now()
	s.CreatedOn = now
	s.UpdatedOn = now
	query := `INSERT INTO stations (id, name, location, address, total_slots, lat, lng, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Location, s.Address, s.TotalSlots, s.Lat, s.Lng, s.IsActive, s.CreatedOn, s.UpdatedOn)
	return err
}

func scanStationRow(scan func(dest ...any) error) (*domain.Station, error) {
	s := &domain.Station{}
	err := scan(&s.ID, &s.Name, &s.Location, &s.Address, &s.TotalSlots, &s.Lat, &s.Lng, &s.IsActive, &s.CreatedOn, &s.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE id = $1`
	return scanStationRow(r.db.QueryRowContext(ctx, query, id).Scan)
}

func (r *stationRepository) list(ctx context.Context, query string) ([]domain.Station, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		s, err := scanStationRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		stations = append(stations, *s)
	}
	return stations, rows.Err()
}

func (r *stationRepository) ListActive(ctx context.Context) ([]domain.Station, error) {
	return r.list(ctx, `SELECT `+stationColumns+` FROM stations WHERE is_active = TRUE ORDER BY name`)
}

func (r *stationRepository) List(ctx context.Context) ([]domain.Station, error) {
	return r.list(ctx, `SELECT `+stationColumns+` FROM stations ORDER BY name`)
}

func (r *stationRepository) Update(ctx context.Context, s *domain.Station) error {
	s.UpdatedOn = time.Now()
	query := `UPDATE stations SET name=$1, location=$2, address=$3, total_slots=$4, lat=$5, lng=$6, is_active=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Location, s.Address, s.TotalSlots, s.Lat, s.Lng, s.IsActive, s.UpdatedOn, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
