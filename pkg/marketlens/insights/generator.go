// Package insights produces narrative text from analysis results. The
// generator is an external collaborator that may be slow or unavailable;
// callers must treat its failure as non-fatal.
package insights

import (
	"context"
	"errors"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

// Fallback messages used when a narrative cannot be generated.
const (
	FallbackBusinessInsights = "AI insights generation is currently unavailable. Please check your API configuration."
	FallbackChartInsights    = "Unable to generate chart insights at this time."
	FallbackAnswer           = "Unable to answer the question at this time. Please try again."
)

// ErrNoContent indicates the provider answered without any text.
var ErrNoContent = errors.New("insights: empty response")

// Generator turns an analysis result into a narrative report.
type Generator interface {
	BusinessInsights(ctx context.Context, result *models.AnalysisResult, focusBrand string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, result *models.AnalysisResult, focusBrand string) (string, error)

// BusinessInsights calls f.
func (f GeneratorFunc) BusinessInsights(ctx context.Context, result *models.AnalysisResult, focusBrand string) (string, error) {
	return f(ctx, result, focusBrand)
}
