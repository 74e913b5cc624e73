package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVariables(t *testing.T) {
	t.Run("distinct markers", func(t *testing.T) {
		text := "Summarize {{FOO}} using the style of {{BAR}}."
		assert.Equal(t, []string{"FOO", "BAR"}, ExtractVariables(text))
	})

	t.Run("duplicate markers collapse", func(t *testing.T) {
		text := "{{X}} and again {{X}}, one more time {{X}}"
		assert.Equal(t, []string{"X"}, ExtractVariables(text))
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		text := "Use {{INPUT_TEXT}} and {{STYLE}}."
		assert.Equal(t, ExtractVariables(text), ExtractVariables(text))
	})

	t.Run("no markers yields empty slice", func(t *testing.T) {
		assert.Empty(t, ExtractVariables("plain prose with no variables"))
	})

	t.Run("first-seen order is preserved", func(t *testing.T) {
		text := "{{ZULU}} then {{ALPHA}} then {{ZULU}} then {{MIKE}}"
		assert.Equal(t, []string{"ZULU", "ALPHA", "MIKE"}, ExtractVariables(text))
	})

	t.Run("malformed markers are ignored", func(t *testing.T) {
		tests := []struct {
			name string
			text string
		}{
			{"lowercase name", "{{foo}}"},
			{"mixed case name", "{{Foo}}"},
			{"leading digit", "{{9LIVES}}"},
			{"single braces", "{FOO}"},
			{"unclosed marker", "{{FOO}"},
			{"empty name", "{{}}"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Empty(t, ExtractVariables(tt.text))
			})
		}
	})

	t.Run("underscore start and digits allowed", func(t *testing.T) {
		text := "{{_INTERNAL}} plus {{VAR2}}"
		assert.Equal(t, []string{"_INTERNAL", "VAR2"}, ExtractVariables(text))
	})
}
