package jobs

import (
	"context"
	"time"

	"umbrella-share-backend/internal/logger"
)

// SendOverdueReminders emails every user holding an overdue umbrella.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		query := `
			SELECT br.id, br.user_id, br.due_time,
			       u.email, u.name,
			       um.umbrella_id
			FROM borrow_records br
			JOIN users u ON br.user_id = u.id
			JOIN umbrellas um ON br.umbrella_id = um.id
			WHERE br.status = 'overdue'
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue borrows", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				borrowID    string
				userID      string
				dueTime     time.Time
				email       string
				name        string
				umbrellaTag string
			)

			if err := rows.Scan(&borrowID, &userID, &dueTime, &email, &name, &umbrellaTag); err != nil {
				logger.Error("Failed to scan overdue borrow", "error", err)
				continue
			}

			err := jr.services.Email.SendOverdueReminder(ctx, email, name, umbrellaTag, dueTime.Format("2006-01-02 15:04"))
			if err != nil {
				logger.Error("Failed to send overdue reminder email",
					"borrow_id", borrowID,
					"user_id", userID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent overdue reminder",
				"borrow_id", borrowID,
				"user_id", userID,
				"email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue borrows", "error", err)
			return
		}

		logger.Info("Overdue reminders sent", "count", count)
	})
}
