package validators

import (
	"regexp"
	"strings"
)

var (
	extensionToken = regexp.MustCompile(`[A-Za-z0-9]+`)
	escapeSequence = regexp.MustCompile(`\\[A-Za-z]`)
)

// SampleFilenames returns one filename per word-like token of a rule
// pattern, which covers the `\.ext$` and `\.(a|b)$` forms rules are written
// in. Escape sequences such as \b and \d are not tokens.
func SampleFilenames(pattern string) []string {
	stripped := strings.ReplaceAll(pattern, `\.`, " ")
	stripped = escapeSequence.ReplaceAllString(stripped, " ")

	tokens := extensionToken.FindAllString(stripped, -1)
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		names = append(names, "file."+token)
	}
	return names
}

// Overlap returns a sample filename of either pattern that both patterns
// match. ok is false when the patterns claim disjoint extensions.
func Overlap(a, b *regexp.Regexp) (name string, ok bool) {
	for _, name = range SampleFilenames(a.String()) {
		if b.MatchString(name) {
			return name, true
		}
	}
	for _, name = range SampleFilenames(b.String()) {
		if a.MatchString(name) {
			return name, true
		}
	}
	return "", false
}

// Overlaps reports whether a and b claim a common file extension.
func Overlaps(a, b *regexp.Regexp) bool {
	_, ok := Overlap(a, b)
	return ok
}
