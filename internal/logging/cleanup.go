package logging

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
)

// Cleanup deletes system logs older than the retention period once a day.
type Cleanup struct {
	db        *gorm.DB
	retention time.Duration
	scheduler *gocron.Scheduler
}

func NewCleanup(db *gorm.DB, retentionDays int) *Cleanup {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Cleanup{
		db:        db,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

func (c *Cleanup) Start() error {
	if _, err := c.scheduler.Every(1).Day().At("03:00").Do(func() { c.Run() }); err != nil {
		return fmt.Errorf("schedule log cleanup: %w", err)
	}
	c.scheduler.StartAsync()
	return nil
}

func (c *Cleanup) Stop() {
	c.scheduler.Stop()
}

// Run deletes expired rows and returns how many were removed.
func (c *Cleanup) Run() int64 {
	cutoff := time.Now().UTC().Add(-c.retention)
	result := c.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return 0
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
	return result.RowsAffected
}
