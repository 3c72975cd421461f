package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type borrowRepository struct {
	db *sql.DB
}

func NewBorrowRepository(db *sql.DB) repository.BorrowRepository {
	return &borrowRepository{db: db}
}

// detailQuery resolves umbrella, user and station details in one round trip.
const detailQuery = `
	SELECT b.id, b.user_id, b.umbrella_id, b.borrow_station_id, b.return_station_id,
	       b.borrow_time, b.due_time, b.return_time, b.status, b.created_on, b.updated_on,
	       u.umbrella_id, u.color, u.size,
	       usr.name, usr.email,
	       bs.name, bs.location,
	       rs.name, rs.location
	FROM borrow_records b
	JOIN umbrellas u ON u.id = b.umbrella_id
	JOIN users usr ON usr.id = b.user_id
	JOIN stations bs ON bs.id = b.borrow_station_id
	LEFT JOIN stations rs ON rs.id = b.return_station_id`

func scanBorrowDetail(scan func(dest ...any) error) (*domain.BorrowRecord, error) {
	b := &domain.BorrowRecord{}
	umb := &domain.Umbrella{}
	usr := &domain.User{}
	borrowStation := &domain.Station{}
	var returnStationID, returnStationName, returnStationLocation sql.NullString
	var returnTime sql.NullTime

	err := scan(
		&b.ID, &b.UserID, &b.UmbrellaID, &b.BorrowStationID, &returnStationID,
		&b.BorrowTime, &b.DueTime, &returnTime, &b.Status, &b.CreatedOn, &b.UpdatedOn,
		&umb.UmbrellaID, &umb.Color, &umb.Size,
		&usr.Name, &usr.Email,
		&borrowStation.Name, &borrowStation.Location,
		&returnStationName, &returnStationLocation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	umb.ID = b.UmbrellaID
	usr.ID = b.UserID
	borrowStation.ID = b.BorrowStationID
	b.Umbrella = umb
	b.User = usr
	b.BorrowStation = borrowStation

	if returnTime.Valid {
		t := returnTime.Time
		b.ReturnTime = &t
	}
	if returnStationID.Valid {
		b.ReturnStationID = &returnStationID.String
		b.ReturnStation = &domain.Station{
			ID:       returnStationID.String,
			Name:     returnStationName.String,
			Location: returnStationLocation.String,
		}
	}
	return b, nil
}

func (r *borrowRepository) getDetailByID(ctx context.Context, id string) (*domain.BorrowRecord, error) {
	return scanBorrowDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE b.id = $1`, id).Scan)
}

func (r *borrowRepository) Borrow(ctx context.Context, userID, umbrellaID, stationID string, dueTime time.Time) (*domain.BorrowRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// One open borrow per user. The partial unique index on borrow_records
	// backs this check up under concurrent requests.
	var openID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM borrow_records WHERE user_id = $1 AND status IN ('active', 'overdue')`,
		userID).Scan(&openID)
	if err == nil {
		return nil, repository.ErrAlreadyBorrowing
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Conditional claim: only an available, active umbrella at the requested
	// station transitions to borrowed. Concurrent borrowers race on this
	// update; the loser matches zero rows and sees "unavailable".
	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE umbrellas SET status = 'borrowed', updated_on = $1
		 WHERE id = $2 AND station_id = $3 AND status = 'available' AND is_active = TRUE`,
		now, umbrellaID, stationID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, repository.ErrUmbrellaUnavailable
	}

	recordID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO borrow_records (id, user_id, umbrella_id, borrow_station_id, borrow_time, due_time, status, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, 'active', $7, $8)`,
		recordID, userID, umbrellaID, stationID, now, dueTime, now, now)
	if err != nil {
		// The open-borrow SELECT above is unlocked; two borrows by the same
		// user can both pass it, and the loser hits the one-open-per-user
		// index here.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "borrow_records_one_open_per_user" {
			return nil, repository.ErrAlreadyBorrowing
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.getDetailByID(ctx, recordID)
}

func (r *borrowRepository) Return(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var recordID, recordUmbrellaID string
	err = tx.QueryRowContext(ctx,
		`SELECT id, umbrella_id FROM borrow_records
		 WHERE user_id = $1 AND status IN ('active', 'overdue') FOR UPDATE`,
		userID).Scan(&recordID, &recordUmbrellaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoActiveBorrow
	}
	if err != nil {
		return nil, err
	}

	// Defends against returning the wrong item.
	if recordUmbrellaID != umbrellaID {
		return nil, repository.ErrUmbrellaMismatch
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE umbrellas SET status = 'available', station_id = $1, updated_on = $2 WHERE id = $3`,
		stationID, now, umbrellaID)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE borrow_records SET status = 'returned', return_station_id = $1, return_time = $2, updated_on = $3 WHERE id = $4`,
		stationID, now, now, recordID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.getDetailByID(ctx, recordID)
}

func (r *borrowRepository) ResetUser(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var recordID, recordUmbrellaID string
	err = tx.QueryRowContext(ctx,
		`SELECT id, umbrella_id FROM borrow_records
		 WHERE user_id = $1 AND status IN ('active', 'overdue') FOR UPDATE`,
		userID).Scan(&recordID, &recordUmbrellaID)
	if errors.Is(err, sql.ErrNoRows) {
		// Nothing to compensate.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// The umbrella stays where its record froze it; the return station is
	// wherever the umbrella currently sits.
	var stationID string
	if err := tx.QueryRowContext(ctx, `SELECT station_id FROM umbrellas WHERE id = $1`, recordUmbrellaID).Scan(&stationID); err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE umbrellas SET status = 'available', updated_on = $1 WHERE id = $2`,
		now, recordUmbrellaID)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE borrow_records SET status = 'returned', return_station_id = $1, return_time = $2, updated_on = $3 WHERE id = $4`,
		stationID, now, now, recordID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.getDetailByID(ctx, recordID)
}

func (r *borrowRepository) GetOpenByUser(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	return scanBorrowDetail(r.db.QueryRowContext(ctx,
		detailQuery+` WHERE b.user_id = $1 AND b.status IN ('active', 'overdue')`, userID).Scan)
}

func (r *borrowRepository) listDetail(ctx context.Context, query string, args ...any) ([]domain.BorrowRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.BorrowRecord
	for rows.Next() {
		rec, err := scanBorrowDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *borrowRepository) ListByUser(ctx context.Context, userID string) ([]domain.BorrowRecord, error) {
	return r.listDetail(ctx, detailQuery+` WHERE b.user_id = $1 ORDER BY b.borrow_time DESC`, userID)
}

func (r *borrowRepository) ListAll(ctx context.Context) ([]domain.BorrowRecord, error) {
	return r.listDetail(ctx, detailQuery+` ORDER BY b.borrow_time DESC`)
}

func (r *borrowRepository) ListOpen(ctx context.Context) ([]domain.BorrowRecord, error) {
	return r.listDetail(ctx, detailQuery+` WHERE b.status IN ('active', 'overdue') ORDER BY b.borrow_time DESC`)
}

func (r *borrowRepository) MarkOverdue(ctx context.Context, now time.Time) ([]domain.BorrowRecord, error) {
	query := `UPDATE borrow_records SET status = 'overdue', updated_on = $1
	          WHERE status = 'active' AND due_time < $1
	          RETURNING id, user_id, umbrella_id, due_time`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.BorrowRecord
	for rows.Next() {
		var b domain.BorrowRecord
		if err := rows.Scan(&b.ID, &b.UserID, &b.UmbrellaID, &b.DueTime); err != nil {
			return nil, err
		}
		b.Status = domain.BorrowStatusOverdue
		records = append(records, b)
	}
	return records, rows.Err()
}

func (r *borrowRepository) ReplaceAll(ctx context.Context, stations []domain.Station, umbrellas []domain.Umbrella) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Re-initialization is destructive: borrow history references the wiped
	// umbrellas and stations, so it goes too.
	for _, table := range []string{"borrow_records", "umbrellas", "stations"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	now := time.Now()
	for i := range stations {
		s := &stations[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.CreatedOn = now
		s.UpdatedOn = now
		_, err := tx.ExecContext(ctx,
			`INSERT INTO stations (id, name, location, address, total_slots, lat, lng, is_active, created_on, updated_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			s.ID, s.Name, s.Location, s.Address, s.TotalSlots, s.Lat, s.Lng, s.IsActive, s.CreatedOn, s.UpdatedOn)
		if err != nil {
			return err
		}
	}
	for i := range umbrellas {
		u := &umbrellas[i]
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		u.CreatedOn = now
		u.UpdatedOn = now
		_, err := tx.ExecContext(ctx,
			`INSERT INTO umbrellas (id, umbrella_id, station_id, status, color, size, is_active, created_on, updated_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			u.ID, u.UmbrellaID, u.StationID, u.Status, u.Color, u.Size, u.IsActive, u.CreatedOn, u.UpdatedOn)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
