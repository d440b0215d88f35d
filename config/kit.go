package config

import (
	"fmt"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/util"
	"github.com/kbukum/streamkit/validation"
)

// Config contains the configuration fields a streamkit application needs.
// Projects extend this by embedding it in their own config structs.
type Config struct {
	Name          string               `yaml:"name" mapstructure:"name"`
	Environment   string               `yaml:"environment" mapstructure:"environment"`
	Debug         bool                 `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Stream        StreamConfig         `yaml:"stream" mapstructure:"stream"`
}

// StreamConfig tunes the stream primitives.
type StreamConfig struct {
	// ChunkSize is the read size for byte-chunk sources, as a human-readable
	// size string ("32KB", "1MB").
	ChunkSize string `yaml:"chunk_size" mapstructure:"chunk_size"`
	// PipeBuffer is the channel capacity for buffered pipes. Zero means
	// unbuffered rendezvous pipes.
	PipeBuffer int `yaml:"pipe_buffer" mapstructure:"pipe_buffer"`
}

// ApplyDefaults applies default values to stream configuration.
func (c *StreamConfig) ApplyDefaults() {
	if c.ChunkSize == "" {
		c.ChunkSize = "32KB"
	}
}

// ChunkSizeBytes returns the configured chunk size in bytes.
func (c *StreamConfig) ChunkSizeBytes() int {
	return int(util.ParseSize(c.ChunkSize, 32*1024))
}

// Validate validates stream configuration.
func (c *StreamConfig) Validate() error {
	v := validation.New().
		Min("stream.pipe_buffer", c.PipeBuffer, 0).
		Size("stream.chunk_size", c.ChunkSize)
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()
	c.Stream.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Required("config.name", c.Name).
		Required("config.environment", c.Environment).
		OneOf("config.environment", c.Environment, []string{"development", "staging", "production"})
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("config.observability: %w", err)
	}
	if err := c.Stream.Validate(); err != nil {
		return fmt.Errorf("config.stream: %w", err)
	}
	return nil
}
