package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFloatingVariables(t *testing.T) {
	t.Run("excludes stopwords and known variables", func(t *testing.T) {
		text := "Use API and CUSTOMER_NAME and {{COMPANY}}"
		got := FindFloatingVariables(text, []string{"COMPANY"})
		assert.Equal(t, []string{"CUSTOMER_NAME"}, got)
	})

	t.Run("tokens inside markers are not floating", func(t *testing.T) {
		text := "Summarize {{ARTICLE_TEXT}} briefly."
		assert.Empty(t, FindFloatingVariables(text, []string{"ARTICLE_TEXT"}))
	})

	t.Run("marker contents excluded even when not known", func(t *testing.T) {
		text := "Template uses {{SOME_VAR}} here."
		assert.Empty(t, FindFloatingVariables(text, nil))
	})

	t.Run("unbracketed mention of a known variable is excluded", func(t *testing.T) {
		text := "Fill in COMPANY before use: {{COMPANY}}"
		assert.Empty(t, FindFloatingVariables(text, []string{"COMPANY"}))
	})

	t.Run("short tokens are ignored", func(t *testing.T) {
		assert.Empty(t, FindFloatingVariables("An OK AB Go", nil))
	})

	t.Run("acronym stopwords are ignored", func(t *testing.T) {
		text := "Return JSON over HTTP or HTTPS, not CSV or XML."
		assert.Empty(t, FindFloatingVariables(text, nil))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		text := "USER_INPUT here, USER_INPUT there"
		assert.Equal(t, []string{"USER_INPUT"}, FindFloatingVariables(text, nil))
	})

	t.Run("empty result is the common case", func(t *testing.T) {
		assert.Empty(t, FindFloatingVariables("Nothing unusual in this sentence.", nil))
	})
}
