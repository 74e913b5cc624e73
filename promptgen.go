// Package promptgen generates reusable prompt templates from free-text task
// descriptions by delegating to a hosted completion API, and lets callers
// test a generated template by substituting variable values.
package promptgen

import (
	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/generator"
	"github.com/teilomillet/promptgen/llm"
	"github.com/teilomillet/promptgen/utils"
)

// Re-exported core types for a cleaner API surface.
type (
	// Generator is the prompt template synthesis pipeline.
	Generator = generator.Generator

	// Result is the aggregate produced by one generation request.
	Result = generator.Result

	// Validation is the structural diagnostic record for a generated template.
	Validation = generator.Validation

	// Client is the completion client interface consumed by the pipeline.
	Client = llm.Client

	// Config holds connection and generation settings.
	Config = config.Config

	// ConfigOption mutates a Config before the client is built.
	ConfigOption = config.ConfigOption
)

// Re-exported pure pipeline functions.
var (
	// ExtractVariables returns the distinct declared variables in a template.
	ExtractVariables = generator.ExtractVariables

	// FindFloatingVariables flags unbracketed variable-like tokens.
	FindFloatingVariables = generator.FindFloatingVariables

	// ValidateStructure summarizes a template's structural completeness.
	ValidateStructure = generator.ValidateStructure

	// FillTemplate substitutes bindings into a template's markers.
	FillTemplate = generator.FillTemplate

	// ResultJSONSchema returns the JSON schema of the Result payload.
	ResultJSONSchema = generator.ResultJSONSchema
)

// Re-exported config option constructors.
var (
	SetAPIKey      = config.SetAPIKey
	SetBaseURL     = config.SetBaseURL
	SetModel       = config.SetModel
	SetMaxTokens   = config.SetMaxTokens
	SetTemperature = config.SetTemperature
	SetTimeout     = config.SetTimeout
	SetMaxRetries  = config.SetMaxRetries
	SetRetryDelay  = config.SetRetryDelay
	SetLogLevel    = config.SetLogLevel
)

// IsInvalidInput reports whether err marks a caller mistake that should be
// fixed rather than retried.
func IsInvalidInput(err error) bool {
	return llm.IsErrorType(err, llm.ErrorTypeInvalidInput)
}

// IsUpstream reports whether err wraps a completion failure from the client.
func IsUpstream(err error) bool {
	return llm.IsErrorType(err, llm.ErrorTypeUpstream)
}

// New loads configuration from the environment, applies the given options,
// and returns a Generator backed by an LLM Farm client. The configuration is
// read once here; nothing in the pipeline consults the environment afterward.
func New(opts ...ConfigOption) (*Generator, *llm.FarmClient, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	config.ApplyOptions(cfg, opts...)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := utils.NewLogger(cfg.LogLevel)
	client := llm.NewFarmClient(cfg, logger)
	gen := generator.NewGenerator(client,
		generator.WithLogger(logger),
		generator.WithTokenModel(cfg.Model),
	)
	return gen, client, nil
}
