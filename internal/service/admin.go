package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/logger"
	"umbrella-share-backend/internal/repository"
)

// Fixed campus station set recreated by Initialize.
var seedStations = []domain.Station{
	{Name: "Main Gate", Location: "University Main Entrance", Address: "Main Gate, University Campus", TotalSlots: 20, IsActive: true},
	{Name: "Back Gate", Location: "University Back Entrance", Address: "Back Gate, University Campus", TotalSlots: 15, IsActive: true},
	{Name: "College of Natural Science and Mathematics (CNSM)", Location: "CNSM Building", Address: "Natural Sciences Building, University Campus", TotalSlots: 25, IsActive: true},
	{Name: "College of Social Science and Humanities (CSSH)", Location: "CSSH Building", Address: "Social Sciences Building, University Campus", TotalSlots: 20, IsActive: true},
	{Name: "College of Fisheries (CoF)", Location: "Fisheries Building", Address: "Fisheries Department, University Campus", TotalSlots: 15, IsActive: true},
	{Name: "College of Education (CoEd)", Location: "Education Building", Address: "Education Department, University Campus", TotalSlots: 20, IsActive: true},
	{Name: "College of Engineering (COE)", Location: "Engineering Building", Address: "Engineering Department, University Campus", TotalSlots: 30, IsActive: true},
	{Name: "College of Agriculture (CoA)", Location: "Agriculture Building", Address: "Agriculture Department, University Campus", TotalSlots: 18, IsActive: true},
	{Name: "Library", Location: "Main Library Building", Address: "Central Library, University Campus", TotalSlots: 35, IsActive: true},
}

var seedColors = []string{"Blue", "Red", "Green", "Black", "Transparent", "Yellow"}

var seedSizes = []domain.UmbrellaSize{
	domain.UmbrellaSizeSmall,
	domain.UmbrellaSizeMedium,
	domain.UmbrellaSizeLarge,
}

type adminService struct {
	borrowRepo          repository.BorrowRepository
	stationRepo         repository.StationRepository
	umbrellaRepo        repository.UmbrellaRepository
	userRepo            repository.UserRepository
	umbrellasPerStation int
}

func NewAdminService(
	borrowRepo repository.BorrowRepository,
	stationRepo repository.StationRepository,
	umbrellaRepo repository.UmbrellaRepository,
	userRepo repository.UserRepository,
	umbrellasPerStation int,
) AdminService {
	return &adminService{
		borrowRepo:          borrowRepo,
		stationRepo:         stationRepo,
		umbrellaRepo:        umbrellaRepo,
		userRepo:            userRepo,
		umbrellasPerStation: umbrellasPerStation,
	}
}

func (s *adminService) Initialize(ctx context.Context) (int, int, error) {
	stations := make([]domain.Station, len(seedStations))
	copy(stations, seedStations)

	var umbrellas []domain.Umbrella
	counter := 1
	for i := range stations {
		stations[i].ID = uuid.NewString()
		for j := 0; j < s.umbrellasPerStation; j++ {
			umbrellas = append(umbrellas, domain.Umbrella{
				ID:         uuid.NewString(),
				UmbrellaID: fmt.Sprintf("UMB-%03d", counter),
				StationID:  stations[i].ID,
				Color:      seedColors[rand.Intn(len(seedColors))],
				Size:       seedSizes[rand.Intn(len(seedSizes))],
				Status:     domain.UmbrellaStatusAvailable,
				IsActive:   true,
			})
			counter++
		}
	}

	if err := s.borrowRepo.ReplaceAll(ctx, stations, umbrellas); err != nil {
		return 0, 0, err
	}
	logger.Info("campus data initialized", "stations", len(stations), "umbrellas", len(umbrellas))
	return len(stations), len(umbrellas), nil
}

func (s *adminService) ResetUserBorrow(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	record, err := s.borrowRepo.ResetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		logger.Warn("user borrow state force-reset", "user_id", userID, "record_id", record.ID)
	}
	return record, nil
}

func (s *adminService) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stationRepo.List(ctx)
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) ListUmbrellas(ctx context.Context) ([]domain.Umbrella, error) {
	return s.umbrellaRepo.List(ctx)
}

func (s *adminService) ListBorrowRecords(ctx context.Context) ([]domain.BorrowRecord, error) {
	return s.borrowRepo.ListAll(ctx)
}

func (s *adminService) ListActiveBorrows(ctx context.Context) ([]domain.BorrowRecord, error) {
	return s.borrowRepo.ListOpen(ctx)
}
