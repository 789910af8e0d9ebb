package utils

import (
	"coursefeedback/database"
	"coursefeedback/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeCleanupScheduler starts the daily maintenance job that purges
// soft-deleted courses once they have been gone long enough. Feedback rows
// are hard-deleted on the request path, so only courses need purging.
func InitializeCleanupScheduler() {
	log.Println("[CLEANUP-SCHEDULER] Initializing cleanup scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[CLEANUP-SCHEDULER] Running daily cleanup...")
		PurgeDeletedCourses(30)
	})

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Cleanup scheduler started - runs daily at 3 AM")
}

// PurgeDeletedCourses hard-deletes courses that were soft-deleted more
// than retentionDays ago.
func PurgeDeletedCourses(retentionDays int) {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result := db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Course{})
	if result.Error != nil {
		log.Printf("[CLEANUP-SCHEDULER] Error purging deleted courses: %v", result.Error)
		return
	}

	log.Printf("[CLEANUP-SCHEDULER] Purged %d soft-deleted courses", result.RowsAffected)
}
