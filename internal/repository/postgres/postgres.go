package postgres

import (
	"database/sql"

	"umbrella-share-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.StationRepository
	repository.UmbrellaRepository
	repository.BorrowRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		StationRepository:  NewStationRepository(db),
		UmbrellaRepository: NewUmbrellaRepository(db),
		BorrowRepository:   NewBorrowRepository(db),
	}
}
