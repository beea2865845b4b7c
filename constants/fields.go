package constants

import "strings"

// BrandsField is always present in an extraction schema, exactly once.
const BrandsField = "Card Brands"

// DefaultFields is the field set used when a target has no custom fields.
var DefaultFields = []string{
	"APR",
	"Annual Fee",
	"Intro Offer",
	"Rewards Rate",
	"Benefits",
}

// IsBrandField reports whether a field name carries comma-separated brand
// list values ("Card Brands" on scans, "Brands" on legacy master records).
func IsBrandField(name string) bool {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "card brands", "brands":
		return true
	}
	return false
}
