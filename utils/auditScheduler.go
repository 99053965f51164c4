package utils

import (
	"log"
	"time"

	"examportal/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeAuditScheduler sets up the nightly login-history cleanup
func InitializeAuditScheduler(db *gorm.DB, retentionDays int) *cron.Cron {
	log.Println("[AUDIT-SCHEDULER] Initializing login audit scheduler...")

	c := cron.New()

	// Run daily at 3 AM to prune old login tracking rows
	c.AddFunc("0 3 * * *", func() {
		log.Println("[AUDIT-SCHEDULER] Running daily login audit cleanup...")
		PruneLoginHistory(db, retentionDays)
	})

	c.Start()
	log.Println("[AUDIT-SCHEDULER] Login audit scheduler started - runs daily at 3 AM")
	return c
}

// PruneLoginHistory deletes login tracking rows older than the retention window
func PruneLoginHistory(db *gorm.DB, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	res := db.Where("timestamp < ?", cutoff).Delete(&models.LoginTracking{})
	if res.Error != nil {
		log.Printf("[AUDIT-SCHEDULER] Error pruning login history: %v", res.Error)
		return
	}

	log.Printf("[AUDIT-SCHEDULER] Pruned %d login tracking rows older than %d days", res.RowsAffected, retentionDays)
}
