package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/marketlens-go/pkg/marketlens"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		ConfigFileEnv,
		"GEMINI_API_KEY",
		"MARKETLENS_LOGGING_LEVEL",
		"MARKETLENS_LOGGING_FORMAT",
		"MARKETLENS_ANALYSIS_DEFAULT_FOCUS_BRAND",
		"MARKETLENS_ANALYSIS_PREVIEW_ROWS",
		"MARKETLENS_ANALYSIS_MAX_FILE_SIZE",
		"MARKETLENS_ANALYSIS_CONCURRENCY",
		"MARKETLENS_INSIGHTS_ENABLED",
		"MARKETLENS_INSIGHTS_API_KEY",
		"MARKETLENS_INSIGHTS_MODEL",
		"MARKETLENS_INSIGHTS_TIMEOUT",
		"MARKETLENS_INSIGHTS_TEMPERATURE",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func(t *testing.T) {},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, marketlens.DefaultPreviewRows, cfg.Analysis.PreviewRows)
				assert.Equal(t, marketlens.DefaultMaxFileSize, cfg.Analysis.MaxFileSize)
				assert.False(t, cfg.Insights.Enabled)
				assert.Equal(t, "gemini-1.5-pro", cfg.Insights.Model)
				assert.Equal(t, 2*time.Minute, cfg.Insights.Timeout)
			},
		},
		{
			name: "environment overrides",
			setup: func(t *testing.T) {
				t.Setenv("MARKETLENS_LOGGING_LEVEL", "debug")
				t.Setenv("MARKETLENS_LOGGING_FORMAT", "text")
				t.Setenv("MARKETLENS_ANALYSIS_DEFAULT_FOCUS_BRAND", "Acme")
				t.Setenv("MARKETLENS_ANALYSIS_PREVIEW_ROWS", "10")
				t.Setenv("MARKETLENS_INSIGHTS_ENABLED", "true")
				t.Setenv("MARKETLENS_INSIGHTS_API_KEY", "secret")
				t.Setenv("MARKETLENS_INSIGHTS_TIMEOUT", "30s")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "Acme", cfg.Analysis.DefaultFocusBrand)
				assert.Equal(t, 10, cfg.Analysis.PreviewRows)
				assert.True(t, cfg.Insights.Enabled)
				assert.Equal(t, "secret", cfg.Insights.APIKey)
				assert.Equal(t, 30*time.Second, cfg.Insights.Timeout)
			},
		},
		{
			name: "gemini key fallback",
			setup: func(t *testing.T) {
				t.Setenv("GEMINI_API_KEY", "from-gemini")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from-gemini", cfg.Insights.APIKey)
			},
		},
		{
			name: "file then environment",
			setup: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "marketlens.yaml")
				content := []byte(`
logging:
  level: warn
analysis:
  default_focus_brand: FileBrand
  concurrency: 8
insights:
  model: gemini-test
  timeout: 45s
`)
				require.NoError(t, os.WriteFile(path, content, 0o644))
				t.Setenv(ConfigFileEnv, path)
				t.Setenv("MARKETLENS_ANALYSIS_DEFAULT_FOCUS_BRAND", "EnvBrand")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "EnvBrand", cfg.Analysis.DefaultFocusBrand)
				assert.Equal(t, 8, cfg.Analysis.Concurrency)
				assert.Equal(t, "gemini-test", cfg.Insights.Model)
				assert.Equal(t, 45*time.Second, cfg.Insights.Timeout)
			},
		},
		{
			name: "missing file",
			setup: func(t *testing.T) {
				t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))
			},
			wantErr: true,
		},
		{
			name: "invalid level",
			setup: func(t *testing.T) {
				t.Setenv("MARKETLENS_LOGGING_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "insights enabled without key",
			setup: func(t *testing.T) {
				t.Setenv("MARKETLENS_INSIGHTS_ENABLED", "true")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Insights.Enabled)
				assert.Empty(t, cfg.Insights.APIKey)
			},
		},
		{
			name: "malformed number",
			setup: func(t *testing.T) {
				t.Setenv("MARKETLENS_ANALYSIS_PREVIEW_ROWS", "many")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setup(t)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Analysis.Concurrency = 2
	cfg.Insights.APIKey = "k"

	opts := cfg.Options(nil)
	assert.Equal(t, 2, opts.Concurrency)
	assert.Equal(t, cfg.Analysis.MaxFileSize, opts.MaxFileSize)
	assert.Equal(t, cfg.Insights.Timeout, opts.InsightsTimeout)
	assert.Nil(t, opts.Insights)

	gemini := cfg.Gemini(nil)
	assert.Equal(t, "k", gemini.APIKey)
	assert.Equal(t, cfg.Insights.Model, gemini.Model)
	assert.Equal(t, 40, gemini.TopK)
}
