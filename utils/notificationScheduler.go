package utils

import (
	"coursereg/database"
	"coursereg/models"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// notificationRetentionDays is how long announcement rows stay on the feed.
const notificationRetentionDays = 30

// PruneNotifications deletes notification rows older than the retention
// window, measured from the start of today.
func PruneNotifications() {
	cutoff := now.BeginningOfDay().AddDate(0, 0, -notificationRetentionDays)

	result := database.Database.Db.Where("created_at < ?", cutoff).Delete(&models.Notification{})
	if result.Error != nil {
		log.Printf("[NOTIFY-SCHEDULER] Error pruning notifications: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[NOTIFY-SCHEDULER] Pruned %d old notifications", result.RowsAffected)
	}
}

// StartNotificationScheduler runs the nightly notification cleanup.
func StartNotificationScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 3 * * *", PruneNotifications); err != nil {
		log.Printf("[NOTIFY-SCHEDULER] Failed to schedule cleanup: %v", err)
		return c
	}

	c.Start()
	log.Println("[NOTIFY-SCHEDULER] Nightly notification cleanup scheduled")
	return c
}
