package impl

import (
	"io"
	"log/slog"

	"padpro/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPromotionsConfig() *config.PromotionsConfig {
	return &config.PromotionsConfig{
		MaxPagesPerRun: 10,
	}
}

func newTestAlertsConfig() *config.AlertsConfig {
	return &config.AlertsConfig{
		MinSavings:          0.50,
		PushThrottleMinutes: 30,
	}
}
