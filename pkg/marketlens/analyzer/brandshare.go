// Package analyzer computes brand share, regional and distribution figures
// for a focus brand from a single sheet.
package analyzer

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

// MaxCompetitors is the number of competitors reported by BrandShare.
const MaxCompetitors = 5

// BrandShare ranks brands by market share. It returns nil when the sheet has
// no brand column. Volume, value and share columns are optional; when share is
// missing but volume is present, share is derived from volume.
func BrandShare(sheet *models.Sheet, focusBrand string) *models.BrandShareResult {
	layout := columns.ResolveAll(sheet.Headers)
	if !layout.Has(columns.RoleBrand) {
		return nil
	}

	brandIdx := layout.Index(columns.RoleBrand)
	volumeIdx := layout.Index(columns.RoleVolume)
	valueIdx := layout.Index(columns.RoleValue)
	shareIdx := layout.Index(columns.RoleShare)

	records := make([]models.BrandRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		brand := row.At(brandIdx).Trimmed()
		if brand == "" {
			continue
		}
		records = append(records, models.BrandRecord{
			Brand:  brand,
			Volume: numberAt(row, volumeIdx),
			Value:  numberAt(row, valueIdx),
			Share:  numberAt(row, shareIdx),
		})
	}

	if shareIdx == columns.NotFound && volumeIdx != columns.NotFound {
		volumes := make([]float64, len(records))
		for i, r := range records {
			volumes[i] = r.Volume
		}
		totalVolume := sum(volumes)
		for i := range records {
			records[i].Share = percent(records[i].Volume, totalVolume)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Share > records[j].Share
	})

	result := &models.BrandShareResult{
		AllBrands:   records,
		Competitors: []models.BrandRecord{},
	}

	shares := make([]float64, len(records))
	for i, r := range records {
		shares[i] = r.Share

		if columns.MatchesBrand(r.Brand, focusBrand) {
			if result.FocusBrand == nil {
				focus := r
				rank := i + 1
				result.FocusBrand = &focus
				result.FocusBrandRank = &rank
			}
			continue
		}
		if len(result.Competitors) < MaxCompetitors {
			result.Competitors = append(result.Competitors, r)
		}
	}
	result.TotalMarketShare = sum(shares)

	return result
}

// numberAt coerces the cell at idx, treating a missing column as 0.
func numberAt(row models.Row, idx int) float64 {
	if idx == columns.NotFound {
		return 0
	}
	return row.At(idx).Float()
}

// percent returns part/total*100, or 0 when total is not positive.
func percent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return finite(part / total * 100)
}

// sum adds values, returning 0 for empty input or an overflowing total.
func sum(values []float64) float64 {
	total, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return finite(total)
}

// finite maps NaN and ±Inf to 0 so aggregates always serialize.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
