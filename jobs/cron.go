package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// NightlyRunner is the maintenance entry point wired in from services.
type NightlyRunner interface {
	RunNightly(m *melody.Melody) error
}

var nightlyRunner NightlyRunner

// SetNightlyRunner installs the NightlyRunner implementation
func SetNightlyRunner(runner NightlyRunner) {
	nightlyRunner = runner
}

// InitCronJobs registers and starts the scheduled jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Nightly maintenance at midnight: allotment release, widget stat
	// rollup, overdue-task escalation.
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Running nightly maintenance at: %v", now)
		if nightlyRunner == nil {
			log.Printf("Error: NightlyRunner is not configured")
			return
		}
		if err := nightlyRunner.RunNightly(m); err != nil {
			log.Printf("Error during nightly maintenance: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
