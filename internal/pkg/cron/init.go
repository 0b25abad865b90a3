package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron registers the background jobs and starts the scheduler.
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	mgr.Start()
	log.Info("background jobs scheduled", "jobs", len(mgr.engine.Entries()))
	return nil
}
