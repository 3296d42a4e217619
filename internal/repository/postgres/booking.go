package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, equipment_id, client_id, project_id, start_date, end_date, quantity, status, payment_status, deleted_at, created_on, updated_on`

// notDeleted is the single soft-delete predicate shared by every read path.
// Soft-deleted bookings stay in the table for history but never take part in
// overlap checks, merge lookups or listings.
const notDeleted = `deleted_at IS NULL`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	q := queryerFromContext(ctx, r.db)
	query := `INSERT INTO bookings (equipment_id, client_id, project_id, start_date, end_date, quantity, status, payment_status, serialized, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, (SELECT serialized FROM equipment WHERE id = $1), $9, $10) RETURNING id`
	now := time.Now()
	err := q.QueryRowContext(ctx, query, b.EquipmentID, b.ClientID, b.ProjectID, b.StartDate, b.EndDate, b.Quantity, b.Status, b.PaymentStatus, now, now).Scan(&b.ID)
	if err != nil {
		// The schema carries an exclusion constraint on serialized overlaps
		// as a second line of defense behind the row lock.
		if isExclusionViolation(err) || isUniqueViolation(err) {
			return &domain.ConflictError{EquipmentID: b.EquipmentID}
		}
		return err
	}
	b.CreatedOn = now
	b.UpdatedOn = now
	return nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := scan(&b.ID, &b.EquipmentID, &b.ClientID, &b.ProjectID, &b.StartDate, &b.EndDate, &b.Quantity, &b.Status, &b.PaymentStatus, &b.DeletedAt, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	q := queryerFromContext(ctx, r.db)
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND ` + notDeleted
	return scanBooking(q.QueryRowContext(ctx, query, id).Scan)
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	q := queryerFromContext(ctx, r.db)
	query := `UPDATE bookings SET start_date=$1, end_date=$2, quantity=$3, status=$4, payment_status=$5, updated_on=$6 WHERE id=$7 AND ` + notDeleted
	res, err := q.ExecContext(ctx, query, b.StartDate, b.EndDate, b.Quantity, b.Status, b.PaymentStatus, time.Now(), b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE bookings SET status=$1, updated_on=$2 WHERE id=$3 AND `+notDeleted, status, time.Now(), id)
	if err != nil {
		// Reviving a cancelled booking can collide with a reservation made
		// in the meantime.
		if isExclusionViolation(err) {
			return &domain.ConflictError{}
		}
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE bookings SET payment_status=$1, updated_on=$2 WHERE id=$3 AND `+notDeleted, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) UpdateQuantity(ctx context.Context, id int32, quantity int32) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE bookings SET quantity=$1, updated_on=$2 WHERE id=$3 AND `+notDeleted, quantity, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) UpdateDates(ctx context.Context, id int32, start, end time.Time) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE bookings SET start_date=$1, end_date=$2, updated_on=$3 WHERE id=$4 AND `+notDeleted, start, end, time.Now(), id)
	if err != nil {
		if isExclusionViolation(err) {
			return &domain.ConflictError{}
		}
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) SoftDelete(ctx context.Context, id int32) error {
	q := queryerFromContext(ctx, r.db)
	now := time.Now()
	res, err := q.ExecContext(ctx, `UPDATE bookings SET deleted_at=$1, updated_on=$1 WHERE id=$2 AND `+notDeleted, now, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// FindOverlapping implements the inclusive intersection test:
// existing.start_date <= $end AND existing.end_date >= $start. Cancelled and
// soft-deleted bookings never conflict.
func (r *bookingRepository) FindOverlapping(ctx context.Context, equipmentID int32, start, end time.Time, excludeBookingID int32) ([]domain.BookingConflict, error) {
	q := queryerFromContext(ctx, r.db)
	query := `SELECT b.id, b.project_id, COALESCE(p.name, ''), b.start_date, b.end_date
	          FROM bookings b
	          LEFT JOIN projects p ON p.id = b.project_id
	          WHERE b.equipment_id = $1
	            AND b.` + notDeleted + `
	            AND b.status <> $2
	            AND b.start_date <= $4
	            AND b.end_date >= $3
	            AND ($5 = 0 OR b.id <> $5)
	          ORDER BY b.start_date`
	rows, err := q.QueryContext(ctx, query, equipmentID, domain.BookingStatusCancelled, start, end, excludeBookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conflicts []domain.BookingConflict
	for rows.Next() {
		var c domain.BookingConflict
		if err := rows.Scan(&c.BookingID, &c.ProjectID, &c.ProjectName, &c.StartDate, &c.EndDate); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, rows.Err()
}

func (r *bookingRepository) FindMergeable(ctx context.Context, equipmentID int32, projectID *int32, start, end time.Time) (*domain.Booking, error) {
	q := queryerFromContext(ctx, r.db)
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE equipment_id = $1
	            AND project_id IS NOT DISTINCT FROM $2
	            AND start_date = $3
	            AND end_date = $4
	            AND status <> $5
	            AND ` + notDeleted + `
	          ORDER BY id LIMIT 1`
	b, err := scanBooking(q.QueryRowContext(ctx, query, equipmentID, projectID, start, end, domain.BookingStatusCancelled).Scan)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, nil
	}
	return b, err
}

func (r *bookingRepository) ListByProject(ctx context.Context, projectID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "project_id", projectID, status, page, pageSize)
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "client_id", clientID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	q := queryerFromContext(ctx, r.db)
	offset := (page - 1) * pageSize

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + column + ` = $1 AND ` + notDeleted
	args := []interface{}{id}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY start_date, id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.EquipmentID, &b.ClientID, &b.ProjectID, &b.StartDate, &b.EndDate, &b.Quantity, &b.Status, &b.PaymentStatus, &b.DeletedAt, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}

func requireRow(res sql.Result) error {
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
