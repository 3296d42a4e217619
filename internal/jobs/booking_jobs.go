package jobs

import (
	"context"
	"time"

	"cinerent-backend/internal/logger"
)

// MarkOverdueBookings flips ACTIVE bookings whose end date has passed to
// OVERDUE. This is the only producer of the OVERDUE booking status.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status = 'ACTIVE'
			  AND deleted_at IS NULL
			  AND end_date < $1
			RETURNING id, equipment_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, equipmentID int32
			var endDate time.Time
			if err := rows.Scan(&id, &equipmentID, &endDate); err != nil {
				logger.Error("Failed to scan overdue booking", "error", err)
				continue
			}
			count++
			logger.Debug("Marked booking as overdue",
				"booking_id", id,
				"equipment_id", equipmentID,
				"end_date", endDate.Format("2006-01-02"))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue bookings", "error", err)
			return
		}

		logger.Info("Marked bookings as overdue", "count", count)
	})
}

// MarkOverduePayments flags unpaid bookings that completed more than thirty
// days ago. Payment state is independent of the booking lifecycle, so this
// never touches booking status.
func (jr *JobRunner) MarkOverduePayments() {
	jr.runWithRecovery("MarkOverduePayments", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET payment_status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status = 'COMPLETED'
			  AND payment_status IN ('PENDING', 'PARTIAL')
			  AND end_date < $1
		`

		res, err := jr.db.ExecContext(ctx, query, time.Now().AddDate(0, 0, -30))
		if err != nil {
			logger.Error("Failed to mark overdue payments", "error", err)
			return
		}

		count, _ := res.RowsAffected()
		logger.Info("Marked payments as overdue", "count", count)
	})
}
