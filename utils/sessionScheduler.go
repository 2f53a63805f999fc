package utils

import (
	"caces/database"
	"caces/models"
	"caces/models/session"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeSessionScheduler sets up the daily session maintenance jobs
func InitializeSessionScheduler() {
	log.Println("[SESSION-SCHEDULER] Initializing session scheduler...")

	c := cron.New()

	// Run daily at 7 AM
	c.AddFunc("0 7 * * *", func() {
		log.Println("[SESSION-SCHEDULER] Running daily session check...")
		SendUpcomingSessionReminders()
		ReportStaleSessions()
	})

	// Nightly database backup at 2 AM
	c.AddFunc("0 2 * * *", func() {
		if _, err := BackupDatabase(); err != nil {
			log.Printf("[SESSION-SCHEDULER] Backup failed: %v", err)
		}
	})

	c.Start()
	log.Println("[SESSION-SCHEDULER] Session scheduler started - runs daily at 7 AM")
}

// SendUpcomingSessionReminders emails trainers about sessions starting within 48 hours
func SendUpcomingSessionReminders() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var upcoming []session.Session
	if err := db.
		Where("is_deleted = ? AND status IN ?", false, []string{session.StatusPlanned, session.StatusReady}).
		Where("date_session BETWEEN ? AND ?", now, twoDaysFromNow).
		Find(&upcoming).Error; err != nil {
		log.Printf("[SESSION-SCHEDULER] Error fetching upcoming sessions: %v", err)
		return
	}

	log.Printf("[SESSION-SCHEDULER] Found %d upcoming sessions", len(upcoming))

	for _, sess := range upcoming {
		if sess.TrainerID == nil {
			continue
		}

		var trainer models.Trainer
		if err := db.Where("id = ? AND is_deleted = ?", *sess.TrainerID, false).First(&trainer).Error; err != nil {
			log.Printf("[SESSION-SCHEDULER] Error fetching trainer %d: %v", *sess.TrainerID, err)
			continue
		}
		if trainer.Email == "" {
			continue
		}

		SendSessionReminderEmail(trainer.Email, trainer.Prenom+" "+trainer.Nom, sess.NomSession, sess.DateSession, sess.Location)
		log.Printf("[SESSION-SCHEDULER] Sent reminder for session %d to %s", sess.ID, trainer.Email)
	}
}

// ReportStaleSessions logs in-progress sessions whose date is more than a day old
func ReportStaleSessions() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -1)

	var stale []session.Session
	if err := db.
		Where("is_deleted = ? AND status = ? AND date_session < ?", false, session.StatusInProgress, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("[SESSION-SCHEDULER] Error fetching stale sessions: %v", err)
		return
	}

	for _, sess := range stale {
		log.Printf("[SESSION-SCHEDULER] Session %d (%s) still in-progress since %s", sess.ID, sess.NomSession, sess.DateSession.Format("2006-01-02"))
	}
}
