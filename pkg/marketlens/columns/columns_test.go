package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	headers := []string{"", "Brand Name", "Sub-Brand", "Volume (kg)", "Market Share %"}

	assert.Equal(t, 1, Resolve(headers, "brand"), "leftmost match wins")
	assert.Equal(t, 3, Resolve(headers, "VOLUME"))
	assert.Equal(t, 4, ResolveRole(headers, RoleShare))
	assert.Equal(t, NotFound, ResolveRole(headers, RoleRegion))
	assert.Equal(t, NotFound, Resolve(nil, "brand"))
}

func TestResolveAll(t *testing.T) {
	layout := ResolveAll([]string{"Product", "Channel", "WTD Distribution %"})

	assert.True(t, layout.Has(RoleProduct))
	assert.Equal(t, 2, layout.Index(RoleDistribution))
	assert.False(t, layout.Has(RoleAvailability))
	assert.Equal(t, NotFound, layout.Index(RoleAvailability))
}

func TestPeriodColumns(t *testing.T) {
	headers := []string{"Region", "Brand", "Q1 Sales", "Q2", "Revenue", "Notes", "Unique Id"}
	assert.Equal(t, []int{2, 3, 4, 6}, PeriodColumns(headers))
}

func TestRoleKeyword(t *testing.T) {
	assert.Equal(t, "availability", RoleAvailability.Keyword())
	assert.Equal(t, "", Role(99).Keyword())
}

func TestMatchesBrand(t *testing.T) {
	assert.True(t, MatchesBrand("Focus Co", "focus"))
	assert.True(t, MatchesBrand("SUNBULAH Flour 1kg", "Sunbulah"))
	assert.False(t, MatchesBrand("Acme", "Focus"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected SheetKind
	}{
		{"Brand_Share_Cleaned", SheetBrandShare},
		{"BRAND SHARE", SheetBrandShare},
		{"Brand Regional Share", SheetBrandShare},
		{"Brand", SheetUnknown},
		{"Regional", SheetRegional},
		{"Sales by Region", SheetRegional},
		{"Regional WTD", SheetRegional},
		{"WTD", SheetDistribution},
		{"Numeric Distribution", SheetDistribution},
		{"Summary", SheetUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.name), "Classify(%q)", tt.name)
	}
}

func TestSheetKindString(t *testing.T) {
	assert.Equal(t, "brand_share", SheetBrandShare.String())
	assert.Equal(t, "unknown", SheetUnknown.String())

	role, ok := SheetRegional.KeyRole()
	assert.True(t, ok)
	assert.Equal(t, RoleRegion, role)

	_, ok = SheetUnknown.KeyRole()
	assert.False(t, ok)
}
