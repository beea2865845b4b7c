package fetch

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_StripsNoise(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head><body>
		<script>var x = "hidden";</script>
		<noscript>enable js</noscript>
		<iframe src="ad.html">framed</iframe>
		<h1>Platinum  Card</h1>
		<p>No annual   fee.</p>
	</body></html>`

	text, err := ExtractText(html, 0)
	require.NoError(t, err)

	assert.Equal(t, "Platinum Card No annual fee.", text)
	assert.NotContains(t, text, "hidden")
	assert.NotContains(t, text, "enable js")
}

func TestExtractText_TruncatesToBudget(t *testing.T) {
	html := "<html><body>" + strings.Repeat("word ", 100) + "</body></html>"

	text, err := ExtractText(html, 20)
	require.NoError(t, err)

	assert.Len(t, text, 20)
}

func TestIsSoft404(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"short not-found page", "Sorry, Page Not Found. Try the homepage.", true},
		{"short 404 page", "Error 404 - nothing here", true},
		{"case insensitive", "PAGE NOT FOUND", true},
		{"short normal page", "Welcome to our card offers overview", false},
		{"long page mentioning 404", strings.Repeat("Great card offer. ", 100) + "Call 404-555-0101.", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSoft404(tt.text))
		})
	}
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "abc", Snippet("abcdef", 3))
	assert.Equal(t, "abcdef", Snippet("abcdef", 100))
	assert.Equal(t, "abcdef", Snippet("abcdef", 0))
}

func TestTruncation_KeepsRuneBoundaries(t *testing.T) {
	// "Gebühr" — "ü" is two bytes; a byte-indexed cut at 4 would split it.
	text := "Gebühr"

	got := Snippet(text, 4)
	assert.Equal(t, "Geb", got)
	assert.True(t, utf8.ValidString(got))

	got = Snippet(text, 5)
	assert.Equal(t, "Gebü", got)
	assert.True(t, utf8.ValidString(got))

	html := "<html><body>€€€€</body></html>"
	out, err := ExtractText(html, 7) // mid-rune: each € is three bytes
	require.NoError(t, err)
	assert.Equal(t, "€€", out)
	assert.True(t, utf8.ValidString(out))
}

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, checkStatus("https://a.example", 200))
	assert.NoError(t, checkStatus("https://a.example", 304))

	err := checkStatus("https://a.example", 500)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 500, fe.StatusCode)

	// No main-document response observed at all.
	err = checkStatus("https://a.example", 0)
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Reason, "no main-document response")
}
