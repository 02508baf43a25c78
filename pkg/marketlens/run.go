package marketlens

import (
	"context"
	"io"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/insights"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

// Run reads r, analyzes it for focusBrand and, when opts.Insights is set,
// attaches a narrative report. The context is only checked before work
// starts and passed to the insight generator; reading and analysis are not
// interruptible. A failing generator never fails Run: the result carries
// insights.FallbackBusinessInsights instead.
func Run(ctx context.Context, r io.Reader, fileName, focusBrand string, opts Options) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, err := Read(r, fileName, opts)
	if err != nil {
		return nil, err
	}

	result, err := Analyze(wb, focusBrand, opts)
	if err != nil {
		return nil, err
	}

	AttachInsights(ctx, result, opts)
	return result, nil
}

// AttachInsights fills result.AIInsights from opts.Insights. It is a no-op
// when no generator is configured.
func AttachInsights(ctx context.Context, result *models.AnalysisResult, opts Options) {
	if opts.Insights == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, opts.insightsTimeout())
	defer cancel()

	text, err := opts.Insights.BusinessInsights(ctx, result, result.FocusBrand)
	if err != nil {
		opts.logger().Warn("insight generation failed",
			"focus_brand", result.FocusBrand,
			"error", err)
		result.AIInsights = insights.FallbackBusinessInsights
		result.InsightsUnavailable = true
		return
	}
	result.AIInsights = text
	result.InsightsUnavailable = false
}
