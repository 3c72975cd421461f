package service

import (
	"context"
	"errors"
	"time"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/logger"
	"umbrella-share-backend/internal/repository"
)

type borrowService struct {
	borrowRepo repository.BorrowRepository
	duePeriod  time.Duration
}

func NewBorrowService(borrowRepo repository.BorrowRepository, dueDays int) BorrowService {
	return &borrowService{
		borrowRepo: borrowRepo,
		duePeriod:  time.Duration(dueDays) * 24 * time.Hour,
	}
}

func (s *borrowService) Borrow(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error) {
	dueTime := time.Now().Add(s.duePeriod)
	record, err := s.borrowRepo.Borrow(ctx, userID, umbrellaID, stationID, dueTime)
	if err != nil {
		return nil, err
	}
	logger.Info("umbrella borrowed",
		"user_id", userID, "umbrella_id", umbrellaID, "station_id", stationID, "record_id", record.ID)
	return record, nil
}

func (s *borrowService) Return(ctx context.Context, userID, umbrellaID, stationID string) (*domain.BorrowRecord, error) {
	record, err := s.borrowRepo.Return(ctx, userID, umbrellaID, stationID)
	if err != nil {
		return nil, err
	}
	logger.Info("umbrella returned",
		"user_id", userID, "umbrella_id", umbrellaID, "station_id", stationID, "record_id", record.ID)
	return record, nil
}

func (s *borrowService) GetCurrent(ctx context.Context, userID string) (*domain.BorrowRecord, error) {
	record, err := s.borrowRepo.GetOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *borrowService) GetHistory(ctx context.Context, userID string) ([]domain.BorrowRecord, error) {
	return s.borrowRepo.ListByUser(ctx, userID)
}
