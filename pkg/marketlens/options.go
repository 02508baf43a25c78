// Package marketlens reads spreadsheet exports and computes brand share,
// regional and distribution analytics for a focus brand.
package marketlens

import (
	"log/slog"
	"time"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/insights"
)

const (
	// DefaultMaxFileSize is the largest accepted upload (50 MiB).
	DefaultMaxFileSize int64 = 50 << 20
	// DefaultPreviewRows is the number of rows returned by Preview.
	DefaultPreviewRows = 5
	// DefaultConcurrency bounds AnalyzeBrands.
	DefaultConcurrency = 4
	// DefaultInsightsTimeout bounds a single narrative request.
	DefaultInsightsTimeout = 2 * time.Minute
)

// Options configures reading and analysis.
type Options struct {
	// MaxFileSize rejects larger inputs with ErrFileTooLarge. Zero uses DefaultMaxFileSize.
	MaxFileSize int64
	// PreviewRows is the row count used by Preview. Zero uses DefaultPreviewRows.
	PreviewRows int
	// Concurrency bounds the number of brands analyzed at once by AnalyzeBrands.
	Concurrency int
	// Insights generates narrative text in Run. Nil skips generation.
	Insights insights.Generator
	// InsightsTimeout bounds the narrative request. Zero uses DefaultInsightsTimeout.
	InsightsTimeout time.Duration
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		MaxFileSize:     DefaultMaxFileSize,
		PreviewRows:     DefaultPreviewRows,
		Concurrency:     DefaultConcurrency,
		InsightsTimeout: DefaultInsightsTimeout,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) maxFileSize() int64 {
	if o.MaxFileSize > 0 {
		return o.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (o Options) previewRows() int {
	if o.PreviewRows > 0 {
		return o.PreviewRows
	}
	return DefaultPreviewRows
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return DefaultConcurrency
}

func (o Options) insightsTimeout() time.Duration {
	if o.InsightsTimeout > 0 {
		return o.InsightsTimeout
	}
	return DefaultInsightsTimeout
}
