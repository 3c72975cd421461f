package jobs

import (
	"context"
	"time"

	"umbrella-share-backend/internal/logger"
)

// MarkOverdueBorrows flips borrows past their due time from active to overdue.
func (jr *JobRunner) MarkOverdueBorrows() {
	jr.runWithRecovery("MarkOverdueBorrows", func() {
		ctx := context.Background()

		records, err := jr.store.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue borrows", "error", err)
			return
		}

		logger.Info("Marked borrows as overdue", "count", len(records))

		for _, record := range records {
			logger.Debug("Marked borrow as overdue",
				"borrow_id", record.ID,
				"user_id", record.UserID,
				"umbrella_id", record.UmbrellaID,
				"due_time", record.DueTime)
		}
	})
}
