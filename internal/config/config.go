// Package config loads CLI configuration from defaults, an optional YAML file
// and MARKETLENS_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/marketlens-go/pkg/marketlens"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/insights"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MARKETLENS"

// ConfigFileEnv names the environment variable holding the YAML file path.
const ConfigFileEnv = "MARKETLENS_CONFIG"

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Insights InsightsConfig `yaml:"insights" envconfig:"INSIGHTS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// AnalysisConfig contains reading and analysis limits
type AnalysisConfig struct {
	DefaultFocusBrand string `yaml:"default_focus_brand" envconfig:"DEFAULT_FOCUS_BRAND"`
	PreviewRows       int    `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"min=1,max=1000"`
	MaxFileSize       int64  `yaml:"max_file_size" envconfig:"MAX_FILE_SIZE" validate:"min=1"`
	Concurrency       int    `yaml:"concurrency" envconfig:"CONCURRENCY" validate:"min=1,max=64"`
}

// InsightsConfig contains narrative generation settings
type InsightsConfig struct {
	Enabled           bool          `yaml:"enabled" envconfig:"ENABLED"`
	APIKey            string        `yaml:"api_key" envconfig:"API_KEY"`
	BaseURL           string        `yaml:"base_url" envconfig:"BASE_URL" validate:"omitempty,url"`
	Model             string        `yaml:"model" envconfig:"MODEL" validate:"required"`
	Temperature       float64       `yaml:"temperature" envconfig:"TEMPERATURE" validate:"min=0,max=2"`
	TopK              int           `yaml:"top_k" envconfig:"TOP_K" validate:"min=1"`
	TopP              float64       `yaml:"top_p" envconfig:"TOP_P" validate:"gt=0,lte=1"`
	MaxOutputTokens   int           `yaml:"max_output_tokens" envconfig:"MAX_OUTPUT_TOKENS" validate:"min=1"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	RequestsPerMinute int           `yaml:"requests_per_minute" envconfig:"REQUESTS_PER_MINUTE" validate:"min=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	gemini := insights.DefaultGeminiConfig()
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Analysis: AnalysisConfig{
			PreviewRows: marketlens.DefaultPreviewRows,
			MaxFileSize: marketlens.DefaultMaxFileSize,
			Concurrency: marketlens.DefaultConcurrency,
		},
		Insights: InsightsConfig{
			BaseURL:           gemini.BaseURL,
			Model:             gemini.Model,
			Temperature:       gemini.Temperature,
			TopK:              gemini.TopK,
			TopP:              gemini.TopP,
			MaxOutputTokens:   gemini.MaxOutputTokens,
			Timeout:           gemini.Timeout,
			RequestsPerMinute: gemini.RequestsPerMinute,
		},
	}
}

// Load reads the file named by MARKETLENS_CONFIG, if any, then the
// environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(ConfigFileEnv))
}

// LoadFrom is Load with an explicit config file path. An empty path skips
// the file; a path that does not exist is an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Fields without a matching variable keep their file or default value.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if cfg.Insights.APIKey == "" {
		cfg.Insights.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file at path onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Options converts the analysis section to library options.
func (c *Config) Options(logger *slog.Logger) marketlens.Options {
	return marketlens.Options{
		MaxFileSize:     c.Analysis.MaxFileSize,
		PreviewRows:     c.Analysis.PreviewRows,
		Concurrency:     c.Analysis.Concurrency,
		InsightsTimeout: c.Insights.Timeout,
		Logger:          logger,
	}
}

// Gemini converts the insights section to a client configuration.
func (c *Config) Gemini(logger *slog.Logger) insights.GeminiConfig {
	return insights.GeminiConfig{
		APIKey:            c.Insights.APIKey,
		BaseURL:           c.Insights.BaseURL,
		Model:             c.Insights.Model,
		Temperature:       c.Insights.Temperature,
		TopK:              c.Insights.TopK,
		TopP:              c.Insights.TopP,
		MaxOutputTokens:   c.Insights.MaxOutputTokens,
		Timeout:           c.Insights.Timeout,
		RequestsPerMinute: c.Insights.RequestsPerMinute,
		Logger:            logger,
	}
}
