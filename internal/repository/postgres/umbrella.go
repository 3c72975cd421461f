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

type umbrellaRepository struct {
	db *sql.DB
}

func NewUmbrellaRepository(db *sql.DB) repository.UmbrellaRepository {
	return &umbrellaRepository{db: db}
}

const umbrellaColumns = `u.id, u.umbrella_id, u.station_id, u.status, u.color, u.size, u.is_active, u.created_on, u.updated_on`

func (r *umbrellaRepository) Create(ctx context.Context, u *domain.Umbrella) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = domain.UmbrellaStatusAvailable
	}
	if u.Size == "" {
		u.Size = domain.UmbrellaSizeMedium
	}
	now := time.Now()
	u.CreatedOn = now
	u.UpdatedOn = now
	query := `INSERT INTO umbrellas (id, umbrella_id, station_id, status, color, size, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.UmbrellaID, u.StationID, u.Status, u.Color, u.Size, u.IsActive, u.CreatedOn, u.UpdatedOn)
	return err
}

func (r *umbrellaRepository) GetByID(ctx context.Context, id string) (*domain.Umbrella, error) {
	u := &domain.Umbrella{}
	query := `SELECT ` + umbrellaColumns + ` FROM umbrellas u WHERE u.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.UmbrellaID, &u.StationID, &u.Status, &u.Color, &u.Size, &u.IsActive, &u.CreatedOn, &u.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// listWithStation runs a query whose select list is umbrellaColumns followed by
// the joined station's name and location.
func (r *umbrellaRepository) listWithStation(ctx context.Context, query string, args ...any) ([]domain.Umbrella, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var umbrellas []domain.Umbrella
	for rows.Next() {
		var u domain.Umbrella
		st := &domain.Station{}
		if err := rows.Scan(&u.ID, &u.UmbrellaID, &u.StationID, &u.Status, &u.Color, &u.Size, &u.IsActive, &u.CreatedOn, &u.UpdatedOn, &st.Name, &st.Location); err != nil {
			return nil, err
		}
		st.ID = u.StationID
		u.Station = st
		umbrellas = append(umbrellas, u)
	}
	return umbrellas, rows.Err()
}

func (r *umbrellaRepository) ListAvailableByStation(ctx context.Context, stationID string) ([]domain.Umbrella, error) {
	query := `SELECT ` + umbrellaColumns + `, s.name, s.location
	          FROM umbrellas u JOIN stations s ON s.id = u.station_id
	          WHERE u.station_id = $1 AND u.status = 'available' AND u.is_active = TRUE
	          ORDER BY u.umbrella_id`
	return r.listWithStation(ctx, query, stationID)
}

func (r *umbrellaRepository) List(ctx context.Context) ([]domain.Umbrella, error) {
	query := `SELECT ` + umbrellaColumns + `, s.name, s.location
	          FROM umbrellas u JOIN stations s ON s.id = u.station_id
	          ORDER BY u.umbrella_id`
	return r.listWithStation(ctx, query)
}

func (r *umbrellaRepository) Update(ctx context.Context, u *domain.Umbrella) error {
	u.UpdatedOn = time.Now()
	query := `UPDATE umbrellas SET umbrella_id=$1, station_id=$2, status=$3, color=$4, size=$5, is_active=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, u.UmbrellaID, u.StationID, u.Status, u.Color, u.Size, u.IsActive, u.UpdatedOn, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *umbrellaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM umbrellas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
