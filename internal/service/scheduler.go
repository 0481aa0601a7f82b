package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SchedulerConfig holds cron specs of background jobs. An empty spec disables the job.
type SchedulerConfig struct {
	FeedbackRelaySpec string
	FeedbackBatchSize int
	ProgressSweepSpec string
}

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cfg      SchedulerConfig
	feedback *FeedbackService
	sweeper  ProgressSweeper
	logger   *zap.Logger
}

// NewScheduler creates a scheduler. feedback and sweeper may be nil.
func NewScheduler(cfg SchedulerConfig, feedback *FeedbackService, sweeper ProgressSweeper, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		feedback: feedback,
		sweeper:  sweeper,
		logger:   logger,
	}
}

// Run schedules the jobs and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if s.feedback != nil && s.cfg.FeedbackRelaySpec != "" {
		if _, err := c.AddFunc(s.cfg.FeedbackRelaySpec, func() { s.relayFeedback(ctx) }); err != nil {
			return fmt.Errorf("add feedback relay job: %w", err)
		}
	}

	if s.sweeper != nil && s.cfg.ProgressSweepSpec != "" {
		if _, err := c.AddFunc(s.cfg.ProgressSweepSpec, func() { s.sweepProgress(ctx) }); err != nil {
			return fmt.Errorf("add progress sweep job: %w", err)
		}
	}

	c.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(c.Entries())))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) relayFeedback(ctx context.Context) {
	batch := s.cfg.FeedbackBatchSize
	if batch <= 0 {
		batch = 50
	}

	n, err := s.feedback.RelayPending(ctx, batch)
	if err != nil {
		s.logger.Error("failed to relay feedback", zap.Int("published", n), zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("feedback relayed", zap.Int("published", n))
	}
}

func (s *Scheduler) sweepProgress(ctx context.Context) {
	n, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.Error("failed to sweep quiz progress", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Debug("expired quiz progress removed", zap.Int("removed", n))
	}
}
