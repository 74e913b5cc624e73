package generator

import (
	"context"
	"strings"

	"github.com/teilomillet/promptgen/llm"
)

// FillTemplate replaces every bound marker {{NAME}} in template with its
// value from bindings. Replacement positions come from a single scan of the
// original template, so a value that itself contains a marker-shaped
// substring is never re-substituted. Markers with no binding pass through
// unchanged; partial testing is permitted.
func FillTemplate(template string, bindings map[string]string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range markerPattern.FindAllStringSubmatchIndex(template, -1) {
		name := template[loc[2]:loc[3]]
		value, bound := bindings[name]
		if !bound {
			continue
		}
		sb.WriteString(template[last:loc[0]])
		sb.WriteString(value)
		last = loc[1]
	}
	sb.WriteString(template[last:])
	return sb.String()
}

// Test substitutes bindings into template and invokes the completion client
// with the filled text to produce a sample output.
func (g *Generator) Test(ctx context.Context, template string, bindings map[string]string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", llm.NewLLMError(llm.ErrorTypeInvalidInput, "template is empty", nil)
	}

	filled := FillTemplate(template, bindings)
	g.logger.Debug("Testing prompt template", "bindings", len(bindings), "filled_length", len(filled))

	output, err := g.client.Complete(ctx, testSystemPrompt, filled)
	if err != nil {
		return "", llm.NewLLMError(llm.ErrorTypeUpstream, "completion request failed", err)
	}
	return output, nil
}
