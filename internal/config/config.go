package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// maxBatchSize bounds BATCH_SIZE; larger batches hold offsets uncommitted for
// too long after a crash.
const maxBatchSize = 1000

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaSourceTopic string   `envconfig:"KAFKA_SOURCE_TOPIC" default:"raw-metar-observations"`
	KafkaSinkTopic   string   `envconfig:"KAFKA_SINK_TOPIC" default:"carb-icing-advisories"`
	KafkaGroupID     string   `envconfig:"KAFKA_GROUP_ID" default:"carbice-advisory"`

	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	BatchSize          int           `envconfig:"BATCH_SIZE" default:"50"`
	BatchFlushInterval time.Duration `envconfig:"BATCH_FLUSH_INTERVAL" default:"500ms"`

	// PipelineEnabled gates the Kafka advisory pipeline. When false the
	// service runs as a standalone calculator API with no broker connection.
	PipelineEnabled bool `envconfig:"PIPELINE_ENABLED" default:"true"`
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PipelineEnabled {
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when the pipeline is enabled")
		}
		if c.KafkaSourceTopic == "" {
			return fmt.Errorf("KAFKA_SOURCE_TOPIC is required when the pipeline is enabled")
		}
		if c.KafkaSinkTopic == "" {
			return fmt.Errorf("KAFKA_SINK_TOPIC is required when the pipeline is enabled")
		}
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.BatchSize < 1 || c.BatchSize > maxBatchSize {
		return fmt.Errorf("BATCH_SIZE must be between 1 and %d, got %d", maxBatchSize, c.BatchSize)
	}
	if c.BatchFlushInterval <= 0 {
		return fmt.Errorf("BATCH_FLUSH_INTERVAL must be positive, got %s", c.BatchFlushInterval)
	}
	return nil
}
