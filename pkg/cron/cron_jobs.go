package cron

import (
	"context"
	"database/sql"
	"time"

	"ihumure/pkg/utils"

	"github.com/robfig/cron/v3"
)

func StartCronJob(db *sql.DB) *cron.Cron {
	c := cron.New()

	// Runs every 6 hours — clear expired OTPs and reset codes
	_, err := c.AddFunc("0 */6 * * *", func() {
		err := ClearExpiredCredentialTokens(db)
		if err != nil {
			utils.Logger.Errorf("Cron job failed to clear expired tokens: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule token cleanup job: %v", err)
	}

	// Runs daily at midnight — remind approvers about stale pending expenses
	_, err = c.AddFunc("0 0 * * *", func() {
		err := SendPendingExpenseReminders(db)
		if err != nil {
			utils.Logger.Errorf("Cron job failed to send pending expense reminders: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule pending expense reminder job: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (token cleanup every 6h, pending expense reminders daily at midnight)")
	return c
}

// -------------------------------------------------------------
// Clear expired OTPs and password reset codes
// -------------------------------------------------------------
func ClearExpiredCredentialTokens(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().Format(time.RFC3339)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE admins
		SET otp = NULL, otp_expires = NULL
		WHERE otp IS NOT NULL AND otp_expires < ?
	`, now)
	if err != nil {
		tx.Rollback()
		return err
	}

	otpRows, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE admins
		SET password_reset_token = NULL, password_token_expires = NULL
		WHERE password_reset_token IS NOT NULL AND password_token_expires < ?
	`, now)
	if err != nil {
		tx.Rollback()
		return err
	}

	resetRows, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if otpRows > 0 || resetRows > 0 {
		utils.Logger.Infof("Cleared %d expired OTPs and %d expired reset codes", otpRows, resetRows)
	}
	return nil
}

// -------------------------------------------------------------
// Remind superadmins about expenses pending for over a week
// -------------------------------------------------------------
func SendPendingExpenseReminders(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -7).Format("2006-01-02 15:04:05")

	var pendingCount int
	var oldestTitle string
	var oldestCreatedAt string
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE((SELECT title FROM expenses WHERE status = 'PENDING' AND created_at < ? ORDER BY created_at ASC LIMIT 1), ''),
			COALESCE((SELECT created_at FROM expenses WHERE status = 'PENDING' AND created_at < ? ORDER BY created_at ASC LIMIT 1), '')
		FROM expenses
		WHERE status = 'PENDING' AND created_at < ?
	`, cutoff, cutoff, cutoff).Scan(&pendingCount, &oldestTitle, &oldestCreatedAt)
	if err != nil {
		return err
	}

	if pendingCount == 0 {
		return nil
	}

	oldestSince, parseErr := time.Parse("2006-01-02 15:04:05", oldestCreatedAt)
	if parseErr != nil {
		oldestSince = time.Now()
	}

	rows, err := db.QueryContext(ctx, `
		SELECT email, first_name
		FROM admins
		WHERE role = 'superadmin' AND inactive_status = FALSE
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	sent := 0
	for rows.Next() {
		var email, firstName string
		if err := rows.Scan(&email, &firstName); err != nil {
			continue
		}
		if err := utils.SendPendingExpenseReminderEmail(email, firstName, pendingCount, oldestTitle, oldestSince); err != nil {
			utils.Logger.Errorf("failed to send pending expense reminder to %s: %v", email, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		utils.Logger.Infof("Sent pending expense reminders to %d approver(s) for %d stale request(s)", sent, pendingCount)
	}
	return rows.Err()
}
