package fetch

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var whitespace = regexp.MustCompile(`\s+`)

// ExtractText strips non-content markup from rendered HTML and returns the
// visible text, whitespace-collapsed and truncated to budget characters.
// Target pages routinely weigh far more than an LLM context is worth, so the
// budget bounds extraction cost.
func ExtractText(html string, budget int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, iframe").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	return truncateRunes(text, budget), nil
}

// Snippet returns the leading part of rendered text stored alongside each
// scan for later review.
func Snippet(text string, n int) string {
	return truncateRunes(text, n)
}

// truncateRunes caps text at n bytes without splitting a multibyte rune.
func truncateRunes(text string, n int) string {
	if n <= 0 || len(text) <= n {
		return text
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
