package recorder

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults to five minutes without a section", func(t *testing.T) {
		cfg, err := newConfig(viper.New())

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.Retention)
	})

	t.Run("reads configured retention", func(t *testing.T) {
		v := viper.New()
		v.Set("recorder.retention", "90s")

		cfg, err := newConfig(v)

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.Retention)
	})

	t.Run("zero retention falls back to default", func(t *testing.T) {
		v := viper.New()
		v.Set("recorder.retention", "0s")

		cfg, err := newConfig(v)

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.Retention)
	})
}
