package utils

import (
	"coursereg/config"
	"coursereg/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SyncToDirectory pushes a newly registered user to the campus directory
// service. Best effort: a failure is logged and never surfaced to the
// registering user. Disabled when DIRECTORY_SYNC_URL is unset.
func SyncToDirectory(user models.User) {
	syncURL := config.AppConfig.DirectorySyncURL
	if syncURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"firstName":  user.FirstName,
			"lastName":   user.LastName,
			"email":      user.Email,
			"department": user.Department,
			"role":       user.Role,
		}).
		Post(syncURL)
	if err != nil {
		log.Printf("Error syncing user to directory: %v", err)
		return
	}

	if resp.IsError() {
		log.Printf("Directory sync failed for %s: %s", user.Email, resp.Status())
		return
	}

	log.Printf("User synced successfully to directory: %s", user.Email)
}
