package analyzer

import (
	"sort"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

const (
	// MaxRegionCompetitors is the number of competitors listed per region.
	MaxRegionCompetitors = 3
	// MaxTopRegions is the length of RegionalResult.TopRegions.
	MaxTopRegions = 5
)

// regionTotals accumulates brand values for one region in first-seen order.
type regionTotals struct {
	name   string
	brands []models.BrandValue
	index  map[string]int
	total  float64
}

func (r *regionTotals) add(brand string, value float64) {
	i, ok := r.index[brand]
	if !ok {
		i = len(r.brands)
		r.index[brand] = i
		r.brands = append(r.brands, models.BrandValue{Brand: brand})
	}
	r.brands[i].Value += value
	r.total += value
}

// Regional sums every period column ("q", "sales", "revenue") per row and
// accumulates the result per region and brand. Distinct periods are
// conflated into one figure. It returns nil when the sheet has
// no region column.
func Regional(sheet *models.Sheet, focusBrand string) *models.RegionalResult {
	regionIdx := columns.ResolveRole(sheet.Headers, columns.RoleRegion)
	if regionIdx == columns.NotFound {
		return nil
	}
	brandIdx := columns.ResolveRole(sheet.Headers, columns.RoleBrand)
	periods := columns.PeriodColumns(sheet.Headers)

	var order []*regionTotals
	byName := make(map[string]*regionTotals)

	for _, row := range sheet.Rows {
		region := row.At(regionIdx).Trimmed()
		if region == "" {
			continue
		}
		brand := ""
		if brandIdx != columns.NotFound {
			brand = row.At(brandIdx).Trimmed()
		}

		totals, ok := byName[region]
		if !ok {
			totals = &regionTotals{name: region, index: make(map[string]int)}
			byName[region] = totals
			order = append(order, totals)
		}
		if len(periods) == 0 {
			continue
		}

		values := make([]float64, len(periods))
		for i, col := range periods {
			values[i] = row.At(col).Float()
		}
		totals.add(brand, sum(values))
	}

	breakdown := make([]models.RegionSummary, 0, len(order))
	for _, totals := range order {
		breakdown = append(breakdown, summarizeRegion(totals, focusBrand))
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].FocusBrandValue > breakdown[j].FocusBrandValue
	})

	top := breakdown
	if len(top) > MaxTopRegions {
		top = top[:MaxTopRegions]
	}

	return &models.RegionalResult{
		RegionalBreakdown: breakdown,
		TopRegions:        top,
		TotalRegions:      len(order),
	}
}

func summarizeRegion(totals *regionTotals, focusBrand string) models.RegionSummary {
	var focusValue float64
	competitors := make([]models.BrandValue, 0, len(totals.brands))
	for _, bv := range totals.brands {
		bv.Value = finite(bv.Value)
		if columns.MatchesBrand(bv.Brand, focusBrand) {
			focusValue += bv.Value
			continue
		}
		competitors = append(competitors, bv)
	}

	sort.SliceStable(competitors, func(i, j int) bool {
		return competitors[i].Value > competitors[j].Value
	})
	if len(competitors) > MaxRegionCompetitors {
		competitors = competitors[:MaxRegionCompetitors]
	}

	focusValue = finite(focusValue)
	total := finite(totals.total)
	return models.RegionSummary{
		Region:          totals.name,
		FocusBrandValue: focusValue,
		TotalValue:      total,
		MarketShare:     percent(focusValue, total),
		Competitors:     competitors,
	}
}
