package models

import "time"

// BrandRecord is one brand row of a brand share sheet.
type BrandRecord struct {
	Brand  string  `json:"brand"`
	Volume float64 `json:"volume"`
	Value  float64 `json:"value"`
	Share  float64 `json:"share"`
}

// BrandShareResult is the output of the brand share analyzer.
type BrandShareResult struct {
	// AllBrands is every record sorted by share, descending.
	AllBrands []BrandRecord `json:"all_brands"`
	// FocusBrand is the first record matching the focus brand, nil if none does.
	FocusBrand *BrandRecord `json:"focus_brand"`
	// Competitors holds up to five non-focus records in sorted order.
	Competitors []BrandRecord `json:"competitors"`
	// TotalMarketShare is the sum of every record's share.
	TotalMarketShare float64 `json:"total_market_share"`
	// FocusBrandRank is the 1-based position of FocusBrand; nil when the brand is absent.
	FocusBrandRank *int `json:"focus_brand_rank"`
}

// Rank returns FocusBrandRank, or 0 when the focus brand is not ranked.
func (r *BrandShareResult) Rank() int {
	if r == nil || r.FocusBrandRank == nil {
		return 0
	}
	return *r.FocusBrandRank
}

// BrandValue pairs a brand with an accumulated value.
type BrandValue struct {
	Brand string  `json:"brand"`
	Value float64 `json:"value"`
}

// RegionSummary is the focus-brand view of one region.
type RegionSummary struct {
	Region          string       `json:"region"`
	FocusBrandValue float64      `json:"focus_brand_value"`
	TotalValue      float64      `json:"total_value"`
	MarketShare     float64      `json:"market_share"`
	Competitors     []BrandValue `json:"competitors"`
}

// RegionalResult is the output of the regional analyzer.
type RegionalResult struct {
	// RegionalBreakdown lists every region sorted by focus brand value, descending.
	RegionalBreakdown []RegionSummary `json:"regional_breakdown"`
	// TopRegions is the first five entries of RegionalBreakdown.
	TopRegions []RegionSummary `json:"top_regions"`
	// TotalRegions is the number of distinct regions.
	TotalRegions int `json:"total_regions"`
}

// DistributionRecord is one product/channel row of a WTD sheet.
type DistributionRecord struct {
	Product      string  `json:"product"`
	Channel      string  `json:"channel"`
	Distribution float64 `json:"distribution"`
	Availability float64 `json:"availability"`
}

// ChannelAggregate accumulates distribution figures for one channel.
type ChannelAggregate struct {
	Channel                   string  `json:"channel"`
	TotalDistribution         float64 `json:"total_distribution"`
	TotalAvailability         float64 `json:"total_availability"`
	ProductCount              int     `json:"product_count"`
	FocusBrandDistribution    float64 `json:"focus_brand_distribution"`
	FocusBrandAvailability    float64 `json:"focus_brand_availability"`
	FocusBrandProductCount    int     `json:"focus_brand_product_count"`
	AvgDistribution           float64 `json:"avg_distribution"`
	AvgAvailability           float64 `json:"avg_availability"`
	FocusBrandAvgDistribution float64 `json:"focus_brand_avg_distribution"`
	FocusBrandAvgAvailability float64 `json:"focus_brand_avg_availability"`
}

// DistributionResult is the output of the WTD distribution analyzer.
type DistributionResult struct {
	ChannelAnalysis    map[string]*ChannelAggregate `json:"channel_analysis"`
	FocusBrandProducts []DistributionRecord         `json:"focus_brand_products"`
	TotalProducts      int                          `json:"total_products"`
	// ChannelPerformance lists channels sorted by focus brand average distribution, descending.
	ChannelPerformance []ChannelAggregate `json:"channel_performance"`
}

// SheetClassification records how the composer treated one sheet.
type SheetClassification struct {
	Sheet string `json:"sheet"`
	Kind  string `json:"kind"`
	// Analyzed is true when the sheet produced a partial result.
	Analyzed bool `json:"analyzed"`
}

// SheetFailure records an analyzer that failed on one sheet.
type SheetFailure struct {
	Sheet string `json:"sheet"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// AnalysisResult merges every partial result computed for one focus brand.
type AnalysisResult struct {
	ID              string                `json:"id"`
	FocusBrand      string                `json:"focus_brand"`
	Timestamp       time.Time             `json:"timestamp"`
	Metadata        FileMetadata          `json:"metadata"`
	Sheets          []SheetClassification `json:"sheets"`
	BrandShare      *BrandShareResult     `json:"brand_share,omitempty"`
	Regional        *RegionalResult       `json:"regional,omitempty"`
	WTDDistribution *DistributionResult   `json:"wtd_distribution,omitempty"`
	Failures        []SheetFailure        `json:"failures,omitempty"`
	// AIInsights holds generated narrative text, or a fallback message.
	AIInsights string `json:"ai_insights,omitempty"`
	// InsightsUnavailable is set when AIInsights is the fallback message.
	InsightsUnavailable bool `json:"insights_unavailable,omitempty"`
}

// HasData reports whether at least one analyzer produced a result.
func (a *AnalysisResult) HasData() bool {
	return a.BrandShare != nil || a.Regional != nil || a.WTDDistribution != nil
}
