package generator

import "regexp"

// floatingPattern matches a variable-like token mentioned in prose: a
// word-bounded run of uppercase letters, digits, and underscores, at least
// three characters long, not starting with a digit.
var floatingPattern = regexp.MustCompile(`\b[A-Z_][A-Z0-9_]{2,}\b`)

// floatingStopwords are common acronyms that look like variable names but
// never are.
var floatingStopwords = map[string]bool{
	"API":   true,
	"URL":   true,
	"JSON":  true,
	"LLM":   true,
	"AI":    true,
	"HTTP":  true,
	"HTTPS": true,
	"ID":    true,
	"UI":    true,
	"UX":    true,
	"CSV":   true,
	"XML":   true,
	"HTML":  true,
	"SQL":   true,
	"PDF":   true,
	"FAQ":   true,
}

// FindFloatingVariables returns uppercase tokens in text that look like
// variable references but lack marker syntax. Tokens inside {{...}} markers,
// tokens present in knownVariables, and stopword acronyms are excluded. The
// result is a quality warning for the caller to surface, never auto-corrected.
func FindFloatingVariables(text string, knownVariables []string) []string {
	known := make(map[string]bool, len(knownVariables))
	for _, name := range knownVariables {
		known[name] = true
	}

	// Spans covered by marker syntax; mentions inside them are declarations,
	// not floating references.
	markerSpans := markerPattern.FindAllStringIndex(text, -1)
	inMarker := func(start, end int) bool {
		for _, span := range markerSpans {
			if start >= span[0] && end <= span[1] {
				return true
			}
		}
		return false
	}

	floating := []string{}
	seen := make(map[string]bool)
	for _, loc := range floatingPattern.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		if inMarker(loc[0], loc[1]) || known[token] || floatingStopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		floating = append(floating, token)
	}
	return floating
}
