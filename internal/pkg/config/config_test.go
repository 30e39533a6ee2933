//go:build unit

package config_test

import (
	"testing"
	"time"

	"solar-dispatch/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDispatchConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.DispatchConfig)
		wantErr string
	}{
		{name: "test defaults", mutate: func(*config.DispatchConfig) {}},
		{name: "zero reveal ticks", mutate: func(c *config.DispatchConfig) { c.RevealTicks = 0 }},
		{name: "zero code ttl", mutate: func(c *config.DispatchConfig) { c.CodeTTL = 0 }, wantErr: "DISPATCH_CODE_TTL"},
		{name: "reservation as long as the code", mutate: func(c *config.DispatchConfig) { c.ReservationTTL = c.CodeTTL }, wantErr: "DISPATCH_RESERVATION_TTL"},
		{name: "no reservation", mutate: func(c *config.DispatchConfig) { c.ReservationTTL = 0 }, wantErr: "DISPATCH_RESERVATION_TTL"},
		{name: "negative ticks", mutate: func(c *config.DispatchConfig) { c.RevealTicks = -1 }, wantErr: "DISPATCH_REVEAL_TICKS"},
		{name: "negative retention", mutate: func(c *config.DispatchConfig) { c.CodeRetention = -time.Hour }, wantErr: "DISPATCH_CODE_RETENTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.NewTestConfig().Dispatch
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAppLocation(t *testing.T) {
	assert.Equal(t, "Asia/Shanghai", config.AppConfig{TimeZone: "Asia/Shanghai"}.Location().String())
	assert.Equal(t, time.UTC, config.AppConfig{TimeZone: "Mars/Olympus"}.Location())
}
