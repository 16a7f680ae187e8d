// Package config loads application configuration from YAML files, .env files,
// and environment variables, in that order of precedence (later wins).
package config

import (
	"fmt"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/llm"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/logger"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/observability"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/version"
)

// AppConfig is the root configuration for the content generation pipeline.
type AppConfig struct {
	Service  ServiceConfig               `yaml:"service" mapstructure:"service"`
	Logging  logger.Config               `yaml:"logging" mapstructure:"logging"`
	LLM      llm.Config                  `yaml:"llm" mapstructure:"llm"`
	Output   OutputConfig                `yaml:"output" mapstructure:"output"`
	Pipeline PipelineConfig              `yaml:"pipeline" mapstructure:"pipeline"`
	Tracing  observability.TracerConfig  `yaml:"tracing" mapstructure:"tracing"`
	Metrics  observability.MeterConfig   `yaml:"metrics" mapstructure:"metrics"`
}

// ServiceConfig identifies the service.
type ServiceConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
}

// OutputConfig configures the artifact sink.
type OutputConfig struct {
	// Dir is the directory the JSON sink writes pages into.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// PipelineConfig configures the stage graph execution.
type PipelineConfig struct {
	// MaxParallel limits concurrent stages per dependency level (0 = level width).
	MaxParallel int `yaml:"max_parallel" mapstructure:"max_parallel"`
	// MinQuestions is the minimum number of generated questions.
	MinQuestions int `yaml:"min_questions" mapstructure:"min_questions"`
	// FAQSize is the number of questions selected into the FAQ page.
	FAQSize int `yaml:"faq_size" mapstructure:"faq_size"`
}

// ApplyDefaults fills in defaults for unset fields.
func (c *AppConfig) ApplyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "contentgen"
	}
	if c.Service.Version == "" {
		c.Service.Version = version.Get().Version
	}
	c.Logging.ApplyDefaults()
	c.LLM.ApplyDefaults()
	if c.Output.Dir == "" {
		c.Output.Dir = "outputs"
	}
	if c.Pipeline.MinQuestions == 0 {
		c.Pipeline.MinQuestions = 15
	}
	if c.Pipeline.FAQSize == 0 {
		c.Pipeline.FAQSize = 5
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing = mergeTracerDefaults(c.Tracing, c.Service.Name)
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics = mergeMeterDefaults(c.Metrics, c.Service.Name)
	}
}

// Validate checks that the configuration is usable.
func (c *AppConfig) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if c.Pipeline.MaxParallel < 0 {
		return fmt.Errorf("pipeline.max_parallel must be >= 0 (got: %d)", c.Pipeline.MaxParallel)
	}
	if c.Pipeline.FAQSize < 1 {
		return fmt.Errorf("pipeline.faq_size must be >= 1 (got: %d)", c.Pipeline.FAQSize)
	}
	return nil
}

func mergeTracerDefaults(cfg observability.TracerConfig, service string) observability.TracerConfig {
	def := observability.DefaultTracerConfig(service)
	def.Enabled = cfg.Enabled
	if cfg.Endpoint != "" {
		def.Endpoint = cfg.Endpoint
	}
	return def
}

func mergeMeterDefaults(cfg observability.MeterConfig, service string) observability.MeterConfig {
	def := observability.DefaultMeterConfig(service)
	def.Enabled = cfg.Enabled
	if cfg.Endpoint != "" {
		def.Endpoint = cfg.Endpoint
	}
	return def
}
