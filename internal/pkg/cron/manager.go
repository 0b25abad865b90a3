package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"github.com/joeljosepholawale/campustng/internal/job"
)

type Manager struct {
	engine             *cron.Cron
	outboxJob          *job.OutboxJob
	promotionExpiryJob *job.PromotionExpiryJob
}

func NewCronManager(outboxJob *job.OutboxJob, promotionExpiryJob *job.PromotionExpiryJob) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		outboxJob:          outboxJob,
		promotionExpiryJob: promotionExpiryJob,
	}
}

func (s *Manager) RegisterJobs() error {
	// Outbox drains frequently so emails and pushes go out promptly.
	if _, err := s.engine.AddJob("*/15 * * * * *", s.outboxJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 */5 * * * *", s.promotionExpiryJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
