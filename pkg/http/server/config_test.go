package server

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults without a server section", func(t *testing.T) {
		cfg, err := newConfig(viper.New())

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Connection.ReadHeaderTimeout)
		assert.Equal(t, 1<<20, cfg.Connection.MaxHeaderBytes)
		assert.True(t, *cfg.RateLimit.Enabled)
		assert.Equal(t, 1000, cfg.RateLimit.RequestsPerSecond)
		assert.Equal(t, 100, cfg.RateLimit.Burst)
	})

	t.Run("reads configured values", func(t *testing.T) {
		v := viper.New()
		v.Set("server.port", 9090)
		v.Set("server.rate-limit.enabled", false)

		cfg, err := newConfig(v)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.False(t, *cfg.RateLimit.Enabled)
	})

	t.Run("disabled rate limit skips throughput defaults", func(t *testing.T) {
		v := viper.New()
		v.Set("server.rate-limit.enabled", false)

		cfg, err := newConfig(v)

		require.NoError(t, err)
		assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	})
}
