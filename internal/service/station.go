package service

import (
	"context"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"
)

type stationService struct {
	stationRepo repository.StationRepository
}

func NewStationService(stationRepo repository.StationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

func (s *stationService) ListActive(ctx context.Context) ([]domain.Station, error) {
	return s.stationRepo.ListActive(ctx)
}

func (s *stationService) Create(ctx context.Context, station *domain.Station) error {
	return s.stationRepo.Create(ctx, station)
}

func (s *stationService) Update(ctx context.Context, station *domain.Station) error {
	return s.stationRepo.Update(ctx, station)
}

func (s *stationService) Delete(ctx context.Context, id string) error {
	return s.stationRepo.Delete(ctx, id)
}

func (s *stationService) Get(ctx context.Context, id string) (*domain.Station, error) {
	return s.stationRepo.GetByID(ctx, id)
}
