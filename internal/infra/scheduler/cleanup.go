package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"solar-dispatch/internal/pkg/errs"
)

const cleanupJobTimeout = 2 * time.Minute

// CodeCleaner deletes long-expired verification codes and clears stale
// reservations. It returns the number of deleted codes.
type CodeCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type CleanupScheduler struct {
	cron    *cron.Cron
	cleaner CodeCleaner
	logger  *slog.Logger
}

func NewCleanupScheduler(spec string, loc *time.Location, cleaner CodeCleaner, logger *slog.Logger) (*CleanupScheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &CleanupScheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		cleaner: cleaner,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, errs.Wrapf(err, "schedule code cleanup %q", spec)
	}
	return s, nil
}

func (s *CleanupScheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to end.
func (s *CleanupScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CleanupScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupJobTimeout)
	defer cancel()

	s.logger.Info("starting verification code cleanup job")
	if _, err := s.cleaner.CleanupExpired(ctx); err != nil {
		s.logger.Error("verification code cleanup failed", "error", err.Error())
	}
}
