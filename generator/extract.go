package generator

import "regexp"

// markerPattern matches a declared variable marker: {{UPPER_SNAKE_NAME}}.
// The name must start with an uppercase letter or underscore.
var markerPattern = regexp.MustCompile(`\{\{([A-Z_][A-Z0-9_]*)\}\}`)

// ExtractVariables returns the distinct variable names declared in text via
// marker syntax, in first-seen order. Text without markers yields an empty
// slice, not an error.
func ExtractVariables(text string) []string {
	variables := []string{}
	seen := make(map[string]bool)
	for _, match := range markerPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		variables = append(variables, name)
	}
	return variables
}
