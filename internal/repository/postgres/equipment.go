package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, serialized, serial_number, status, created_on, deleted_on`

func scanEquipment(row *sql.Row) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	var serial sql.NullString
	err := row.Scan(&eq.ID, &eq.Name, &eq.Serialized, &serial, &eq.Status, &eq.CreatedOn, &eq.DeletedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	eq.SerialNumber = serial.String
	return eq, nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	q := queryerFromContext(ctx, r.db)
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND deleted_on IS NULL`
	return scanEquipment(q.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Equipment, error) {
	q := queryerFromContext(ctx, r.db)
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND deleted_on IS NULL FOR UPDATE`
	return scanEquipment(q.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE equipment SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *equipmentRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error) {
	q := queryerFromContext(ctx, r.db)
	offset := (page - 1) * pageSize

	var count int32
	if err := q.QueryRowContext(ctx, `SELECT count(*) FROM equipment WHERE deleted_on IS NULL`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE deleted_on IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := q.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		var serial sql.NullString
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Serialized, &serial, &eq.Status, &eq.CreatedOn, &eq.DeletedOn); err != nil {
			return nil, 0, err
		}
		eq.SerialNumber = serial.String
		items = append(items, eq)
	}
	return items, count, rows.Err()
}
