package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"alerts": map[string]any{
			"minSavings":          0.5,
			"pushThrottleMinutes": 30,
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns with existing camelCase keys",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "nested engine key",
			rawKey:   "ALERTS_MINSAVINGS",
			expected: "alerts.minSavings",
		},
		{
			name:     "unknown key falls back to lowercase",
			rawKey:   "FIREBASE_PROJECTID",
			expected: "firebase.projectid",
		},
		{
			name:     "empty segments are dropped",
			rawKey:   "ALERTS__PUSHTHROTTLEMINUTES",
			expected: "alerts.pushThrottleMinutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestApplyEngineDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := &Config{}
		applyEngineDefaults(cfg)

		assert.InDelta(t, 0.50, cfg.Alerts.MinSavings, 1e-9)
		assert.Equal(t, 10, cfg.Promotions.MaxPagesPerRun)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &Config{
			Alerts: &AlertsConfig{
				MinSavings:          1.25,
				PushThrottleMinutes: 0,
			},
			Promotions: &PromotionsConfig{MaxPagesPerRun: 3},
		}
		applyEngineDefaults(cfg)

		assert.InDelta(t, 1.25, cfg.Alerts.MinSavings, 1e-9)
		// Zero throttle stays zero: it means throttling disabled.
		assert.Equal(t, 0, cfg.Alerts.PushThrottleMinutes)
		assert.Equal(t, 3, cfg.Promotions.MaxPagesPerRun)
	})
}
