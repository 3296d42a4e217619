package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinerent-backend/internal/domain"
)

func equipmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "serialized", "serial_number", "status", "created_on", "deleted_on"})
}

func TestEquipmentRepository_GetByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("locks the row for the admission check", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEquipmentRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM equipment WHERE id = \$1 AND deleted_on IS NULL FOR UPDATE`).
			WithArgs(int32(101)).
			WillReturnRows(equipmentRows().AddRow(101, "RED Komodo 6K", true, "RK-0042", "AVAILABLE", time.Now(), nil))

		eq, err := repo.GetByIDForUpdate(ctx, 101)
		require.NoError(t, err)
		assert.True(t, eq.Serialized)
		assert.Equal(t, "RK-0042", eq.SerialNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEquipmentRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing equipment maps to the domain error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEquipmentRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM equipment`).
			WithArgs(int32(99)).
			WillReturnRows(equipmentRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
	})

	t.Run("null serial number scans as empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEquipmentRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM equipment`).
			WithArgs(int32(200)).
			WillReturnRows(equipmentRows().AddRow(200, "XLR Cable 10m", false, nil, "AVAILABLE", time.Now(), nil))

		eq, err := repo.GetByID(ctx, 200)
		require.NoError(t, err)
		assert.False(t, eq.Serialized)
		assert.Empty(t, eq.SerialNumber)
	})
}
