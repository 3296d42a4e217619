package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	q := queryerFromContext(ctx, r.db)
	p := &domain.Project{}
	query := `SELECT id, client_id, name, status, start_date, end_date, created_on, updated_on FROM projects WHERE id = $1`
	err := q.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ClientID, &p.Name, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id int32, status domain.ProjectStatus) error {
	q := queryerFromContext(ctx, r.db)
	res, err := q.ExecContext(ctx, `UPDATE projects SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// FinalizeBookings closes out every live child booking that is not already in
// a terminal state: status moves to COMPLETED and the row is soft-deleted in
// the same statement. Project cancellation uses the same path, because by the
// time a project is cancelled the equipment has usually already left the
// warehouse and the bookings are finalized rather than voided.
func (r *projectRepository) FinalizeBookings(ctx context.Context, projectID int32) (int64, error) {
	q := queryerFromContext(ctx, r.db)
	now := time.Now()
	query := `UPDATE bookings
	          SET status = $1, deleted_at = $2, updated_on = $2
	          WHERE project_id = $3
	            AND deleted_at IS NULL
	            AND status NOT IN ($4, $5)`
	res, err := q.ExecContext(ctx, query, domain.BookingStatusCompleted, now, projectID, domain.BookingStatusCompleted, domain.BookingStatusCancelled)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
