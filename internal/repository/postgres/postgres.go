package postgres

import (
	"context"
	"database/sql"

	"cinerent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	tx *txRunner
	repository.EquipmentRepository
	repository.BookingRepository
	repository.ProjectRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		tx:                  &txRunner{db: db},
		EquipmentRepository: NewEquipmentRepository(db),
		BookingRepository:   NewBookingRepository(db),
		ProjectRepository:   NewProjectRepository(db),
	}
}

// WithTx runs fn inside a single transaction shared by every repository call
// made with the returned context.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.WithTx(ctx, fn)
}
