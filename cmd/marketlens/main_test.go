package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/marketlens-go/internal/config"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/insights"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a one-sheet brand share workbook and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Brand Share"))
	for i, row := range [][]interface{}{
		{"Brand", "Volume"},
		{"Focus Co", 300},
		{"Rival", 100},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Brand Share", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "market.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// resetFlags restores package-level flag values after the test.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := struct {
		configPath, outputPath string
		pretty, withInsights   bool
		focusBrands            []string
	}{configPath, outputPath, pretty, withInsights, focusBrands}
	t.Cleanup(func() {
		configPath, outputPath = saved.configPath, saved.outputPath
		pretty, withInsights = saved.pretty, saved.withInsights
		focusBrands = saved.focusBrands
	})
}

func clearInsightsEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.ConfigFileEnv,
		"GEMINI_API_KEY",
		"MARKETLENS_INSIGHTS_API_KEY",
		"MARKETLENS_INSIGHTS_ENABLED",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestAnalyzeWithoutAPIKeyStillWritesResult(t *testing.T) {
	resetFlags(t)
	clearInsightsEnv(t)

	input := writeWorkbook(t)
	outputPath = filepath.Join(t.TempDir(), "result.json")
	focusBrands = []string{"Focus"}
	withInsights = true

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, runAnalyze(cmd, []string{input}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var result struct {
		FocusBrand          string          `json:"focus_brand"`
		BrandShare          json.RawMessage `json:"brand_share"`
		AIInsights          string          `json:"ai_insights"`
		InsightsUnavailable bool            `json:"insights_unavailable"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Focus", result.FocusBrand)
	assert.NotEmpty(t, result.BrandShare)
	assert.Equal(t, insights.FallbackBusinessInsights, result.AIInsights)
	assert.True(t, result.InsightsUnavailable)
}

func TestBrandsWithInsightsEnabledWithoutKey(t *testing.T) {
	resetFlags(t)
	clearInsightsEnv(t)
	t.Setenv("MARKETLENS_INSIGHTS_ENABLED", "true")

	input := writeWorkbook(t)
	outputPath = filepath.Join(t.TempDir(), "brands.json")

	require.NoError(t, runBrands(&cobra.Command{}, []string{input}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.JSONEq(t, `["Focus Co","Rival"]`, string(data))
}

func TestNewGeneratorWithoutKeyFails(t *testing.T) {
	cfg := config.Default()
	gen := newGenerator(&cfg, discardLogger())

	text, err := gen.BusinessInsights(context.Background(), nil, "Focus")
	assert.Empty(t, text)
	assert.Error(t, err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
