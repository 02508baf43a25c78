package marketlens

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/analyzer"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"golang.org/x/sync/errgroup"
)

// partial holds whatever one analyzer produced for one sheet.
type partial struct {
	brandShare   *models.BrandShareResult
	regional     *models.RegionalResult
	distribution *models.DistributionResult
}

func (p partial) empty() bool {
	return p.brandShare == nil && p.regional == nil && p.distribution == nil
}

type analyzeFunc func(sheet *models.Sheet, focusBrand string) partial

// analyzers maps each recognized sheet kind to its analyzer.
var analyzers = map[columns.SheetKind]analyzeFunc{
	columns.SheetBrandShare: func(s *models.Sheet, focus string) partial {
		return partial{brandShare: analyzer.BrandShare(s, focus)}
	},
	columns.SheetRegional: func(s *models.Sheet, focus string) partial {
		return partial{regional: analyzer.Regional(s, focus)}
	},
	columns.SheetDistribution: func(s *models.Sheet, focus string) partial {
		return partial{distribution: analyzer.Distribution(s, focus)}
	},
}

// Analyze classifies every sheet of wb by name, runs the matching analyzer
// and merges the partial results. Sheets are visited in workbook order; when
// several sheets share a kind, the last one that produces a result wins.
// A failing analyzer is recorded in AnalysisResult.Failures and the
// remaining sheets are still analyzed.
func Analyze(wb *models.Workbook, focusBrand string, opts Options) (*models.AnalysisResult, error) {
	focusBrand = strings.TrimSpace(focusBrand)
	if focusBrand == "" {
		return nil, ErrFocusBrandRequired
	}
	log := opts.logger().With("focus_brand", focusBrand)

	result := &models.AnalysisResult{
		ID:         uuid.NewString(),
		FocusBrand: focusBrand,
		Timestamp:  time.Now().UTC(),
		Metadata:   wb.Metadata,
		Sheets:     make([]models.SheetClassification, 0, wb.Len()),
	}

	for _, sheet := range wb.Sheets {
		kind := columns.Classify(sheet.Name)
		entry := models.SheetClassification{Sheet: sheet.Name, Kind: kind.String()}

		fn, ok := analyzers[kind]
		if !ok {
			log.Debug("sheet ignored", "sheet", sheet.Name)
			result.Sheets = append(result.Sheets, entry)
			continue
		}

		p, err := runAnalyzer(fn, sheet, kind, focusBrand)
		if err != nil {
			log.Warn("sheet analysis failed", "sheet", sheet.Name, "kind", kind.String(), "error", err)
			result.Failures = append(result.Failures, models.SheetFailure{
				Sheet: sheet.Name,
				Kind:  kind.String(),
				Error: err.Error(),
			})
			result.Sheets = append(result.Sheets, entry)
			continue
		}

		entry.Analyzed = !p.empty()
		result.Sheets = append(result.Sheets, entry)
		if !entry.Analyzed {
			log.Debug("sheet lacks key column", "sheet", sheet.Name, "kind", kind.String())
			continue
		}
		merge(result, p)
		log.Debug("sheet analyzed", "sheet", sheet.Name, "kind", kind.String(), "rows", sheet.RowCount)
	}

	return result, nil
}

// runAnalyzer isolates one analyzer call, turning a panic into a *SheetError.
func runAnalyzer(fn analyzeFunc, sheet *models.Sheet, kind columns.SheetKind, focusBrand string) (p partial, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewSheetError(sheet.Name, kind.String(), fmt.Errorf("%v", r))
		}
	}()
	return fn(sheet, focusBrand), nil
}

func merge(result *models.AnalysisResult, p partial) {
	if p.brandShare != nil {
		result.BrandShare = p.brandShare
	}
	if p.regional != nil {
		result.Regional = p.regional
	}
	if p.distribution != nil {
		result.WTDDistribution = p.distribution
	}
}

// AnalyzeBrands runs Analyze for each focus brand concurrently over the same
// workbook. Results are keyed by the trimmed brand. The workbook is only read.
func AnalyzeBrands(ctx context.Context, wb *models.Workbook, focusBrands []string, opts Options) (map[string]*models.AnalysisResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	var mu sync.Mutex
	results := make(map[string]*models.AnalysisResult, len(focusBrands))

	for _, brand := range focusBrands {
		brand := brand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Analyze(wb, brand, opts)
			if err != nil {
				return fmt.Errorf("analyze %q: %w", brand, err)
			}
			mu.Lock()
			results[res.FocusBrand] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
