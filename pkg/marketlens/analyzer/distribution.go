package analyzer

import (
	"sort"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

// Distribution aggregates weighted distribution and availability per channel.
// Every column is optional; rows with neither a product nor a channel are
// dropped. Averages are 0 when their count is 0.
func Distribution(sheet *models.Sheet, focusBrand string) *models.DistributionResult {
	layout := columns.ResolveAll(sheet.Headers)
	productIdx := layout.Index(columns.RoleProduct)
	channelIdx := layout.Index(columns.RoleChannel)
	distributionIdx := layout.Index(columns.RoleDistribution)
	availabilityIdx := layout.Index(columns.RoleAvailability)

	result := &models.DistributionResult{
		ChannelAnalysis:    make(map[string]*models.ChannelAggregate),
		FocusBrandProducts: []models.DistributionRecord{},
		ChannelPerformance: []models.ChannelAggregate{},
	}

	var channels []*models.ChannelAggregate
	for _, row := range sheet.Rows {
		rec := models.DistributionRecord{
			Distribution: numberAt(row, distributionIdx),
			Availability: numberAt(row, availabilityIdx),
		}
		if productIdx != columns.NotFound {
			rec.Product = row.At(productIdx).Trimmed()
		}
		if channelIdx != columns.NotFound {
			rec.Channel = row.At(channelIdx).Trimmed()
		}
		if rec.Product == "" && rec.Channel == "" {
			continue
		}
		result.TotalProducts++

		isFocus := columns.MatchesBrand(rec.Product, focusBrand)
		if isFocus {
			result.FocusBrandProducts = append(result.FocusBrandProducts, rec)
		}
		if rec.Channel == "" {
			continue
		}

		agg, ok := result.ChannelAnalysis[rec.Channel]
		if !ok {
			agg = &models.ChannelAggregate{Channel: rec.Channel}
			result.ChannelAnalysis[rec.Channel] = agg
			channels = append(channels, agg)
		}
		agg.TotalDistribution += rec.Distribution
		agg.TotalAvailability += rec.Availability
		agg.ProductCount++
		if isFocus {
			agg.FocusBrandDistribution += rec.Distribution
			agg.FocusBrandAvailability += rec.Availability
			agg.FocusBrandProductCount++
		}
	}

	for _, agg := range channels {
		agg.TotalDistribution = finite(agg.TotalDistribution)
		agg.TotalAvailability = finite(agg.TotalAvailability)
		agg.FocusBrandDistribution = finite(agg.FocusBrandDistribution)
		agg.FocusBrandAvailability = finite(agg.FocusBrandAvailability)
		agg.AvgDistribution = average(agg.TotalDistribution, agg.ProductCount)
		agg.AvgAvailability = average(agg.TotalAvailability, agg.ProductCount)
		agg.FocusBrandAvgDistribution = average(agg.FocusBrandDistribution, agg.FocusBrandProductCount)
		agg.FocusBrandAvgAvailability = average(agg.FocusBrandAvailability, agg.FocusBrandProductCount)
		result.ChannelPerformance = append(result.ChannelPerformance, *agg)
	}
	sort.SliceStable(result.ChannelPerformance, func(i, j int) bool {
		return result.ChannelPerformance[i].FocusBrandAvgDistribution > result.ChannelPerformance[j].FocusBrandAvgDistribution
	})

	return result
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return finite(total / float64(count))
}
