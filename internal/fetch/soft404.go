package fetch

import "strings"

// A page shorter than this that mentions a not-found phrase is treated as an
// error page served with a success status.
const soft404MaxLen = 1000

var soft404Phrases = []string{
	"page not found",
	"404",
	"not found",
	"does not exist",
	"no longer available",
	"page you requested",
}

// IsSoft404 reports whether rendered text looks like a "not found" page even
// though the HTTP status was a success.
func IsSoft404(text string) bool {
	if len(text) >= soft404MaxLen {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range soft404Phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
