package columns

import "strings"

// SheetKind identifies which analyzer handles a sheet.
type SheetKind int

const (
	SheetUnknown SheetKind = iota
	SheetBrandShare
	SheetRegional
	SheetDistribution
)

func (k SheetKind) String() string {
	switch k {
	case SheetBrandShare:
		return "brand_share"
	case SheetRegional:
		return "regional"
	case SheetDistribution:
		return "wtd_distribution"
	default:
		return "unknown"
	}
}

// Classify maps a sheet name to a kind. Rules are checked in this order and
// the first match wins:
//
//  1. "brand" and "share"      -> SheetBrandShare
//  2. "regional" or "region"   -> SheetRegional
//  3. "wtd" or "distribution"  -> SheetDistribution
//
// Matching is case-insensitive substring containment.
func Classify(sheetName string) SheetKind {
	name := strings.ToLower(sheetName)
	switch {
	case strings.Contains(name, "brand") && strings.Contains(name, "share"):
		return SheetBrandShare
	case ContainsAny(name, []string{"regional", "region"}):
		return SheetRegional
	case ContainsAny(name, []string{"wtd", "distribution"}):
		return SheetDistribution
	default:
		return SheetUnknown
	}
}

// KeyRole returns the column a sheet of this kind is expected to carry, and
// false for SheetUnknown.
func (k SheetKind) KeyRole() (Role, bool) {
	switch k {
	case SheetBrandShare:
		return RoleBrand, true
	case SheetRegional:
		return RoleRegion, true
	case SheetDistribution:
		return RoleDistribution, true
	default:
		return 0, false
	}
}
