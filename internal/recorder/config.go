package recorder

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Retention is the window after which a log entry may be reclaimed
	// by the store. It is not an enforced deletion SLA.
	Retention time.Duration `mapstructure:"retention"`
}

func newConfig(v *viper.Viper) (Config, error) {
	cfg := Config{Retention: 5 * time.Minute}
	if !v.IsSet("recorder") {
		return cfg, nil
	}
	if err := v.Sub("recorder").Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load recorder config: %w", err)
	}
	if cfg.Retention == 0 {
		cfg.Retention = 5 * time.Minute
	}
	return cfg, nil
}
