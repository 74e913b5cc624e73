// Package llm provides the completion client used by the prompt generation
// pipeline. It speaks the OpenAI-compatible chat completions protocol exposed
// by an LLM Farm deployment.
package llm

import "context"

// Client is the completion interface consumed by the generation pipeline.
// Complete sends a (system, user) message pair and returns the generated text.
// HealthCheck issues a trivial completion and reports reachability.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	HealthCheck(ctx context.Context) bool
}
