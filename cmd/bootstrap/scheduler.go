package bootstrap

import (
	"context"
	"log/slog"

	"solar-dispatch/internal/infra/scheduler"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewCleanupScheduler,
	),
	fx.Invoke(startCleanupScheduler),
)

func NewCleanupScheduler(cfg config.Config, codes commands.VerificationCommands, logger *slog.Logger) (*scheduler.CleanupScheduler, error) {
	return scheduler.NewCleanupScheduler(cfg.Dispatch.CleanupSchedule, cfg.App.Location(), codes, logger)
}

func startCleanupScheduler(lc fx.Lifecycle, s *scheduler.CleanupScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
