// Package main provides the CLI entry point for marketlens.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/marketlens-go/internal/config"
	"github.com/ukaji3/marketlens-go/internal/logging"
	"github.com/ukaji3/marketlens-go/pkg/marketlens"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/insights"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/output"
)

var (
	configPath string
	outputPath string
	pretty     bool

	focusBrands  []string
	withInsights bool

	previewSheet string
	previewRows  int
)

// errInvalidWorkbook makes validate exit non-zero after printing its report.
var errInvalidWorkbook = errors.New("workbook failed validation")

func main() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marketlens",
		Short: "Brand share, regional and distribution analytics from Excel exports",
		Long: `marketlens reads market research workbooks, recognizes brand share,
regional and WTD distribution sheets by name, and reports how a focus brand
performs against its competitors as JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $MARKETLENS_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Analyze a workbook for one or more focus brands",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringSliceVarP(&focusBrands, "brand", "b", nil, "Focus brand (repeatable; default: analysis.default_focus_brand)")
	analyzeCmd.Flags().BoolVar(&withInsights, "insights", false, "Generate a narrative report with Gemini")

	brandsCmd := &cobra.Command{
		Use:   "brands [input.xlsx]",
		Short: "List every brand found in the workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrands,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [input.xlsx]",
		Short: "Check sheets for data and expected columns",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Show the first rows of each sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&previewSheet, "sheet", "", "Sheet to preview (default: all sheets)")
	previewCmd.Flags().IntVar(&previewRows, "rows", 0, "Rows per sheet (default: analysis.preview_rows)")

	rootCmd.AddCommand(analyzeCmd, brandsCmd, validateCmd, previewCmd)
	return rootCmd
}

// setup loads configuration and installs the logger.
func setup() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.Initialize(cfg.Logging, os.Stderr), nil
}

func readWorkbook(path string, opts marketlens.Options) (*models.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return marketlens.ReadFile(path, opts)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	opts := cfg.Options(logger)

	brands := focusBrands
	if len(brands) == 0 && cfg.Analysis.DefaultFocusBrand != "" {
		brands = []string{cfg.Analysis.DefaultFocusBrand}
	}
	if len(brands) == 0 {
		return marketlens.ErrFocusBrandRequired
	}

	if withInsights || cfg.Insights.Enabled {
		opts.Insights = newGenerator(cfg, logger)
	}

	wb, err := readWorkbook(args[0], opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	ctx := cmd.Context()
	if len(brands) == 1 {
		result, err := marketlens.Analyze(wb, brands[0], opts)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		marketlens.AttachInsights(ctx, result, opts)
		return write(result)
	}

	results, err := marketlens.AnalyzeBrands(ctx, wb, brands, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	for _, result := range results {
		marketlens.AttachInsights(ctx, result, opts)
	}
	return write(results)
}

// newGenerator returns the Gemini client. When it cannot be built, the
// returned generator fails every call so results carry the fallback text.
func newGenerator(cfg *config.Config, logger *slog.Logger) insights.Generator {
	client, err := insights.NewGeminiClient(cfg.Gemini(logger))
	if err != nil {
		logger.Warn("insights disabled", "error", err)
		return insights.GeneratorFunc(func(context.Context, *models.AnalysisResult, string) (string, error) {
			return "", err
		})
	}
	return client
}

func runBrands(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	wb, err := readWorkbook(args[0], cfg.Options(logger))
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	return write(wb.Brands)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	wb, err := readWorkbook(args[0], cfg.Options(logger))
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	report := marketlens.Validate(wb)
	if err := write(report); err != nil {
		return err
	}
	if !report.IsValid {
		return errInvalidWorkbook
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	opts := cfg.Options(logger)
	if previewRows > 0 {
		opts.PreviewRows = previewRows
	}

	wb, err := readWorkbook(args[0], opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	if previewSheet != "" {
		preview, err := marketlens.Preview(wb, previewSheet, opts)
		if err != nil {
			return err
		}
		return write(preview)
	}

	previews := make([]models.SheetPreview, 0, wb.Len())
	for _, name := range wb.SheetNames() {
		preview, err := marketlens.Preview(wb, name, opts)
		if err != nil {
			return err
		}
		previews = append(previews, preview)
	}
	return write(previews)
}

// write serializes v to --output or stdout.
func write(v any) error {
	if outputPath == "" {
		if err := output.WriteJSON(os.Stdout, v, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
