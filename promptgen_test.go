package promptgen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/promptgen"
)

func TestNew(t *testing.T) {
	t.Run("builds generator and client from environment", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("LLM_FARM_URL", "https://farm.example.com/v1")

		gen, client, err := promptgen.New()
		require.NoError(t, err)
		assert.NotNil(t, gen)
		assert.NotNil(t, client)
	})

	t.Run("options override the environment", func(t *testing.T) {
		t.Setenv("API_KEY", "env-key")
		t.Setenv("LLM_FARM_URL", "https://farm.example.com/v1")

		gen, _, err := promptgen.New(promptgen.SetModel("gpt-4o"), promptgen.SetMaxRetries(0))
		require.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("rejects incomplete configuration", func(t *testing.T) {
		t.Setenv("API_KEY", "")
		t.Setenv("LLM_FARM_URL", "")

		_, _, err := promptgen.New()
		assert.Error(t, err)
	})
}

func TestErrorKindHelpers(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("LLM_FARM_URL", "https://farm.example.com/v1")

	gen, _, err := promptgen.New()
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "   ", nil)
	require.Error(t, err)
	assert.True(t, promptgen.IsInvalidInput(err))
	assert.False(t, promptgen.IsUpstream(err))
}
