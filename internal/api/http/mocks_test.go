package http_test

import (
	"context"

	"umbrella-share-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, studentID, password string) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, studentID, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, login, password string) (*domain.User, string, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, *domain.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	var record *domain.BorrowRecord
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		record = args.Get(1).(*domain.BorrowRecord)
	}
	return user, record, args.Error(2)
}

// MockBorrowService
type MockBorrowService struct {
	mock.Mock
}

func (m *MockBorrowService) Borrow(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error) {
	args := m.Called(ctx, userID, umbrellaID, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowRecord), args.Error(1)
}
func (m *MockBorrowService) Return(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error) {
	args := m.Called(ctx, userID, umbrellaID, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowRecord), args.Error(1)
}
func (m *MockBorrowService) GetCurrent(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowRecord), args.Error(1)
}
func (m *MockBorrowService) GetHistory(ctx context.Context, userID string) ([]domain.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowRecord), args.Error(1)
}

// MockStationService
type MockStationService struct {
	mock.Mock
}

func (m *MockStationService) ListActive(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}
func (m *MockStationService) Create(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}
func (m *MockStationService) Update(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}
func (m *MockStationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStationService) Get(ctx context.Context, id string) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

// MockUmbrellaService
type MockUmbrellaService struct {
	mock.Mock
}

func (m *MockUmbrellaService) ListAvailableByStation(ctx context.Context, stationID string) ([]domain.Umbrella, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Umbrella), args.Error(1)
}
func (m *MockUmbrellaService) Create(ctx context.Context, umbrella *domain.Umbrella) error {
	args := m.Called(ctx, umbrella)
	return args.Error(0)
}
func (m *MockUmbrellaService) Update(ctx context.Context, umbrella *domain.Umbrella) error {
	args := m.Called(ctx, umbrella)
	return args.Error(0)
}
func (m *MockUmbrellaService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUmbrellaService) Get(ctx context.Context, id string) (*domain.Umbrella, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Umbrella), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Initialize(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}
func (m *MockAdminService) ResetUserBorrow(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowRecord), args.Error(1)
}
func (m *MockAdminService) ListStations(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}
func (m *MockAdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockAdminService) ListUmbrellas(ctx context.Context) ([]domain.Umbrella, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Umbrella), args.Error(1)
}
func (m *MockAdminService) ListBorrowRecords(ctx context.Context) ([]domain.BorrowRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowRecord), args.Error(1)
}
func (m *MockAdminService) ListActiveBorrows(ctx context.Context) ([]domain.BorrowRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowRecord), args.Error(1)
}
