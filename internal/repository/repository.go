package repository

import (
	"context"
	"errors"
	"time"

	"umbrella-share-backend/internal/domain"
)

// Sentinel errors surfaced by repository implementations. Services and the
// HTTP layer branch on these; anything else is treated as a storage failure.
var (
	ErrNotFound            = errors.New("record not found")
	ErrAlreadyBorrowing    = errors.New("user already has an active borrow")
	ErrUmbrellaUnavailable = errors.New("umbrella not available")
	ErrUmbrellaMismatch    = errors.New("umbrella does not match current borrow")
	ErrNoActiveBorrow      = errors.New("no active borrow found")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	// GetByLogin matches either email or student id.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	GetByID(ctx context.Context, id string) (*domain.Station, error)
	ListActive(ctx context.Context) ([]domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id string) error
}

type UmbrellaRepository interface {
	Create(ctx context.Context, umbrella *domain.Umbrella) error
	GetByID(ctx context.Context, id string) (*domain.Umbrella, error)
	// ListAvailableByStation returns umbrellas at the station with
	// status=available and is_active=true, station detail populated.
	ListAvailableByStation(ctx context.Context, stationID string) ([]domain.Umbrella, error)
	List(ctx context.Context) ([]domain.Umbrella, error)
	Update(ctx context.Context, umbrella *domain.Umbrella) error
	Delete(ctx context.Context, id string) error
}

// BorrowRepository owns the borrow/return state machine. Borrow, Return and
// ResetUser each run as a single transaction: either every entity involved
// moves, or none does.
type BorrowRepository interface {
	// Borrow claims the umbrella at the station and opens a record for the
	// user. Fails with ErrAlreadyBorrowing if the user holds an open record,
	// or ErrUmbrellaUnavailable if the conditional status claim matches no
	// row (wrong station, inactive, or lost a concurrent race).
	Borrow(ctx context.Context, userID, umbrellaID, stationID string, dueTime time.Time) (*domain.BorrowRecord, error)

	// Return closes the user's open record, releasing the umbrella at the
	// destination station. Fails with ErrNoActiveBorrow or ErrUmbrellaMismatch.
	Return(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error)

	// ResetUser is the administrative escape hatch: it closes the user's open
	// record and releases the umbrella at its frozen station, as one
	// compensating transaction. Returns the closed record, or nil if the user
	// had no open borrow.
	ResetUser(ctx context.Context, userID string) (*domain.BorrowRecord, error)

	GetOpenByUser(ctx context.Context, userID string) (*domain.BorrowRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BorrowRecord, error)
	ListAll(ctx context.Context) ([]domain.BorrowRecord, error)
	ListOpen(ctx context.Context) ([]domain.BorrowRecord, error)

	// MarkOverdue flips every active record past its due time to overdue and
	// returns the affected records. Used by the nightly sweep.
	MarkOverdue(ctx context.Context, now time.Time) ([]domain.BorrowRecord, error)

	// ReplaceAll wipes stations and umbrellas and inserts the given seed set
	// in one transaction. Used by the admin initialize operation.
	ReplaceAll(ctx context.Context, stations []domain.Station, umbrellas []domain.Umbrella) error
}
