// Package columns infers the meaning of sheets and columns from their names.
package columns

import "strings"

// NotFound is returned when no header matches a keyword.
const NotFound = -1

// Role is the semantic meaning inferred for a raw column.
type Role int

const (
	RoleBrand Role = iota
	RoleVolume
	RoleValue
	RoleShare
	RoleRegion
	RoleProduct
	RoleChannel
	RoleDistribution
	RoleAvailability
)

var roleKeywords = [...]string{
	RoleBrand:        "brand",
	RoleVolume:       "volume",
	RoleValue:        "value",
	RoleShare:        "share",
	RoleRegion:       "region",
	RoleProduct:      "product",
	RoleChannel:      "channel",
	RoleDistribution: "distribution",
	RoleAvailability: "availability",
}

// Keyword returns the lowercase substring that identifies the role in a header.
func (r Role) Keyword() string {
	if r < 0 || int(r) >= len(roleKeywords) {
		return ""
	}
	return roleKeywords[r]
}

func (r Role) String() string { return r.Keyword() }

// periodKeywords select the numeric columns summed by the regional analyzer.
var periodKeywords = []string{"q", "sales", "revenue"}

// Resolve returns the index of the first header whose lowercased text
// contains keyword, or NotFound. Blank headers never match.
func Resolve(headers []string, keyword string) int {
	keyword = strings.ToLower(keyword)
	for i, h := range headers {
		if h == "" {
			continue
		}
		if strings.Contains(strings.ToLower(h), keyword) {
			return i
		}
	}
	return NotFound
}

// ResolveRole is Resolve with the role's keyword.
func ResolveRole(headers []string, role Role) int {
	return Resolve(headers, role.Keyword())
}

// Layout holds the resolved index of every role for one sheet.
type Layout map[Role]int

// ResolveAll resolves every role against headers.
func ResolveAll(headers []string) Layout {
	layout := make(Layout, len(roleKeywords))
	for r := range roleKeywords {
		layout[Role(r)] = ResolveRole(headers, Role(r))
	}
	return layout
}

// Has reports whether role was found.
func (l Layout) Has(role Role) bool {
	i, ok := l[role]
	return ok && i != NotFound
}

// Index returns the column for role, or NotFound.
func (l Layout) Index(role Role) int {
	if i, ok := l[role]; ok {
		return i
	}
	return NotFound
}

// PeriodColumns returns every header index containing "q", "sales" or
// "revenue", in column order.
func PeriodColumns(headers []string) []int {
	var out []int
	for i, h := range headers {
		if h == "" {
			continue
		}
		if ContainsAny(strings.ToLower(h), periodKeywords) {
			out = append(out, i)
		}
	}
	return out
}

// ContainsAny reports whether text contains any keyword.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// MatchesBrand reports whether name contains focus, ignoring case.
func MatchesBrand(name, focus string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(focus))
}
