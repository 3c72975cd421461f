package service

import (
	"context"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"
)

type umbrellaService struct {
	umbrellaRepo repository.UmbrellaRepository
	stationRepo  repository.StationRepository
}

func NewUmbrellaService(umbrellaRepo repository.UmbrellaRepository, stationRepo repository.StationRepository) UmbrellaService {
	return &umbrellaService{
		umbrellaRepo: umbrellaRepo,
		stationRepo:  stationRepo,
	}
}

func (s *umbrellaService) ListAvailableByStation(ctx context.Context, stationID string) ([]domain.Umbrella, error) {
	return s.umbrellaRepo.ListAvailableByStation(ctx, stationID)
}

func (s *umbrellaService) Create(ctx context.Context, umbrella *domain.Umbrella) error {
	// Target station must exist; the FK would catch it, but this gives a
	// clean not-found instead of a constraint violation.
	if _, err := s.stationRepo.GetByID(ctx, umbrella.StationID); err != nil {
		return err
	}
	return s.umbrellaRepo.Create(ctx, umbrella)
}

func (s *umbrellaService) Update(ctx context.Context, umbrella *domain.Umbrella) error {
	if _, err := s.stationRepo.GetByID(ctx, umbrella.StationID); err != nil {
		return err
	}
	return s.umbrellaRepo.Update(ctx, umbrella)
}

func (s *umbrellaService) Delete(ctx context.Context, id string) error {
	return s.umbrellaRepo.Delete(ctx, id)
}

func (s *umbrellaService) Get(ctx context.Context, id string) (*domain.Umbrella, error) {
	return s.umbrellaRepo.GetByID(ctx, id)
}
