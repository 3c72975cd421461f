package service

import (
	"context"

	"umbrella-share-backend/internal/domain"
)

type AuthService interface {
	// Register creates a user and returns it with a signed token.
	Register(ctx context.Context, name, email, studentID, password string) (*domain.User, string, error)
	// Login accepts an email or a student id plus password.
	Login(ctx context.Context, login, password string) (*domain.User, string, error)
	// GetProfile returns the user and their open borrow, if any.
	GetProfile(ctx context.Context, userID string) (*domain.User, *domain.BorrowRecord, error)
}

type BorrowService interface {
	Borrow(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error)
	Return(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error)
	// GetCurrent returns (nil, nil) when the user has no open borrow.
	GetCurrent(ctx context.Context, userID string) (*domain.BorrowRecord, error)
	GetHistory(ctx context.Context, userID string) ([]domain.BorrowRecord, error)
}

type StationService interface {
	ListActive(ctx context.Context) ([]domain.Station, error)
	Create(ctx context.Context, station *domain.Station) error
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Station, error)
}

type UmbrellaService interface {
	ListAvailableByStation(ctx context.Context, stationID string) ([]domain.Umbrella, error)
	Create(ctx context.Context, umbrella *domain.Umbrella) error
	Update(ctx context.Context, umbrella *domain.Umbrella) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Umbrella, error)
}

type AdminService interface {
	// Initialize wipes and recreates the campus station set with seed
	// umbrellas, all available. Returns the created counts.
	Initialize(ctx context.Context) (stations int, umbrellas int, err error)
	// ResetUserBorrow force-closes the user's open borrow, cascading to the
	// BorrowRecord and Umbrella. Returns the closed record, nil if none.
	ResetUserBorrow(ctx context.Context, userID string) (*domain.BorrowRecord, error)
	ListStations(ctx context.Context) ([]domain.Station, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUmbrellas(ctx context.Context) ([]domain.Umbrella, error)
	ListBorrowRecords(ctx context.Context) ([]domain.BorrowRecord, error)
	ListActiveBorrows(ctx context.Context) ([]domain.BorrowRecord, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name, umbrellaTag string, dueTime string) error
}
