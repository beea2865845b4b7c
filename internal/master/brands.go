package master

import "strings"

// ParseBrandList splits a comma-separated brand list into its member names.
// Blanks are dropped and duplicates collapse case-insensitively, keeping the
// first spelling seen so the stored order stays stable.
func ParseBrandList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// JoinBrandList renders a brand list back to its stored comma form.
func JoinBrandList(brands []string) string {
	return strings.Join(brands, ", ")
}

// AddBrand unions one brand into the list. Order is preserved and the match
// is case-insensitive, so adding "visa" to "Visa, Mastercard" is a no-op.
func AddBrand(brands []string, brand string) []string {
	name := strings.TrimSpace(brand)
	if name == "" {
		return brands
	}
	key := strings.ToLower(name)
	for _, b := range brands {
		if strings.ToLower(b) == key {
			return brands
		}
	}
	return append(brands, name)
}

// RemoveBrand drops one brand from the list, matching case-insensitively.
func RemoveBrand(brands []string, brand string) []string {
	key := strings.ToLower(strings.TrimSpace(brand))
	out := brands[:0:0]
	for _, b := range brands {
		if strings.ToLower(b) == key {
			continue
		}
		out = append(out, b)
	}
	return out
}
