package logger

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults without a logger section", func(t *testing.T) {
		cfg, err := newConfig(viper.New())

		require.NoError(t, err)
		assert.Equal(t, zapcore.InfoLevel, cfg.Level)
		assert.Equal(t, zapcore.ErrorLevel, cfg.StacktraceLevel)
		assert.False(t, cfg.Development)
	})

	t.Run("parses levels from strings", func(t *testing.T) {
		v := viper.New()
		v.Set("logger.level", "debug")
		v.Set("logger.stacktraceLevel", "warn")
		v.Set("logger.development", true)

		cfg, err := newConfig(v)

		require.NoError(t, err)
		assert.Equal(t, zapcore.DebugLevel, cfg.Level)
		assert.Equal(t, zapcore.WarnLevel, cfg.StacktraceLevel)
		assert.True(t, cfg.Development)
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		v := viper.New()
		v.Set("logger.level", "loud")

		_, err := newConfig(v)

		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts empty paths", func(t *testing.T) {
		assert.NoError(t, Config{}.Validate())
	})

	t.Run("rejects whitespace output path", func(t *testing.T) {
		cfg := Config{OutputPaths: []string{"stderr", "  "}}
		assert.ErrorContains(t, cfg.Validate(), "outputPaths[1]")
	})

	t.Run("rejects whitespace error output path", func(t *testing.T) {
		cfg := Config{ErrorOutputPaths: []string{""}}
		assert.ErrorContains(t, cfg.Validate(), "errorOutputPaths[0]")
	})
}
