package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config is the kafka section shared by producers and consumers.
type Config struct {
	// Brokers is the bootstrap.servers list, comma-separated.
	Brokers string `mapstructure:"brokers"`

	Producer  ProducerConfig   `mapstructure:"producer"`
	Consumers []ConsumerConfig `mapstructure:"consumers"`
	Topics    TopicsConfig     `mapstructure:"topics"`
}

type ProducerConfig struct {
	// ReadinessTimeoutSeconds bounds the broker wait on startup.
	ReadinessTimeoutSeconds int `mapstructure:"readiness-timeout-seconds"`
	// FailOnBrokerError makes startup fail when brokers are unreachable.
	FailOnBrokerError *bool `mapstructure:"fail-on-broker-error"`
	// FlushTimeoutMs bounds the final flush on shutdown.
	FlushTimeoutMs int `mapstructure:"flush-timeout-ms"`
}

type ConsumerConfig struct {
	Name             string `mapstructure:"name"`
	Topic            string `mapstructure:"topic"`
	GroupID          string `mapstructure:"group-id"`
	AutoOffsetReset  string `mapstructure:"auto-offset-reset"`
	DLQTopic         string `mapstructure:"dlq-topic"`
	FailOnTopicError bool   `mapstructure:"fail-on-topic-error"`
}

// TopicsConfig names the topics the storefront publishes to.
type TopicsConfig struct {
	ProductEvents string `mapstructure:"product-events"`
	OrderEvents   string `mapstructure:"order-events"`
	Audit         string `mapstructure:"audit"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	sub := v.Sub("kafka")
	if sub == nil {
		return cfg, fmt.Errorf("kafka configuration section is missing")
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load kafka config: %w", err)
	}

	cfg.setDefaults()
	if cfg.Brokers == "" {
		return cfg, fmt.Errorf("kafka.brokers is required")
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Producer.ReadinessTimeoutSeconds == 0 {
		c.Producer.ReadinessTimeoutSeconds = 30
	}
	if c.Producer.FailOnBrokerError == nil {
		enabled := true
		c.Producer.FailOnBrokerError = &enabled
	}
	if c.Producer.FlushTimeoutMs == 0 {
		c.Producer.FlushTimeoutMs = 5000
	}
	for i := range c.Consumers {
		if c.Consumers[i].AutoOffsetReset == "" {
			c.Consumers[i].AutoOffsetReset = "earliest"
		}
	}
}

// ConsumerByName finds a consumer config by its logical name.
func (c Config) ConsumerByName(name string) (ConsumerConfig, error) {
	for _, consumer := range c.Consumers {
		if consumer.Name == name {
			return consumer, nil
		}
	}
	return ConsumerConfig{}, fmt.Errorf("no consumer config found for consumer name: %s", name)
}

// NewKafkaConfigModule provides the kafka configuration for dependency injection.
func NewKafkaConfigModule() fx.Option {
	return fx.Provide(newConfig)
}
