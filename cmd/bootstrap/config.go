package bootstrap

import (
	"log/slog"

	"solar-dispatch/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
)

// loadConfig refuses to start when a reservation could outlast the code it holds.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Dispatch.Validate(); err != nil {
		return config.Config{}, err
	}
	if loc := cfg.App.Location(); loc.String() != cfg.App.TimeZone {
		slog.Warn("unknown APP_TIMEZONE, dates fall back to UTC", "timezone", cfg.App.TimeZone)
	}
	return cfg, nil
}
