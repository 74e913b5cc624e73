// Package generator implements the prompt template synthesis pipeline:
// building the meta-prompt, invoking the completion client, extracting
// declared variables, flagging floating variables, and validating structure.
package generator

import (
	"context"
	"strings"

	"github.com/teilomillet/promptgen/llm"
	"github.com/teilomillet/promptgen/utils"
)

// Result is the aggregate produced by one generation request. It is built
// once and immutable afterward; all fields are read-only data for rendering.
type Result struct {
	PromptTemplate    string     `json:"prompt_template"`
	Variables         []string   `json:"variables"`
	FloatingVariables []string   `json:"floating_variables"`
	Validation        Validation `json:"validation"`
	TaskDescription   string     `json:"task_description"`
}

// Generator turns free-text task descriptions into reusable prompt templates
// by delegating to a completion client.
type Generator struct {
	client llm.Client
	logger utils.Logger
	tokens *tokenCounter
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger utils.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithTokenModel enables token estimation in validation results using the
// given model's encoding.
func WithTokenModel(model string) Option {
	return func(g *Generator) {
		g.tokens = newTokenCounter(model)
	}
}

// NewGenerator creates a Generator backed by the given completion client.
func NewGenerator(client llm.Client, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		logger: utils.NewLogger(utils.LogLevelWarn),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the meta-prompt for taskDescription, invokes the completion
// client, and returns the generated template together with its extracted
// variables, floating-variable warnings, and validation flags.
//
// explicitVariables, when non-empty, directs the model to use exactly those
// variable names. The three post-processing scans operate on the same
// immutable response text and have no ordering dependency among themselves.
func (g *Generator) Generate(ctx context.Context, taskDescription string, explicitVariables []string) (*Result, error) {
	if strings.TrimSpace(taskDescription) == "" {
		return nil, llm.NewLLMError(llm.ErrorTypeInvalidInput, "task description is empty", nil)
	}

	userPrompt := buildMetaPrompt(taskDescription, explicitVariables)
	g.logger.Debug("Generating prompt template", "task_length", len(taskDescription), "explicit_variables", len(explicitVariables))

	text, err := g.client.Complete(ctx, generateSystemPrompt, userPrompt)
	if err != nil {
		return nil, llm.NewLLMError(llm.ErrorTypeUpstream, "completion request failed", err)
	}

	variables := ExtractVariables(text)
	validation := ValidateStructure(text)
	validation.EstimatedTokens = g.tokens.count(text)

	result := &Result{
		PromptTemplate:    text,
		Variables:         variables,
		FloatingVariables: FindFloatingVariables(text, variables),
		Validation:        validation,
		TaskDescription:   taskDescription,
	}

	g.logger.Info("Prompt template generated",
		"variables", len(result.Variables),
		"floating_variables", len(result.FloatingVariables),
		"word_count", result.Validation.WordCount)

	return result, nil
}
