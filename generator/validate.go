package generator

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// outputFormatSection is the heading the meta-prompt requires in every
// generated template. Matched case-sensitively, with or without a leading
// heading marker.
const outputFormatSection = "Output Format"

// Validation is a diagnostic summary of a generated template. The flags are
// independent observations; deciding whether to reject content based on them
// is the caller's job.
type Validation struct {
	HasTaskDescription bool `json:"has_task_description"`
	HasVariables       bool `json:"has_variables"`
	HasOutputFormat    bool `json:"has_output_format"`
	WordCount          int  `json:"word_count"`
	EstimatedTokens    int  `json:"estimated_tokens,omitempty"`
}

// ValidateStructure checks text against minimal structural expectations.
// It always succeeds; empty or malformed text simply yields false flags.
func ValidateStructure(text string) Validation {
	return Validation{
		HasTaskDescription: strings.TrimSpace(text) != "",
		HasVariables:       markerPattern.MatchString(text),
		HasOutputFormat:    strings.Contains(text, outputFormatSection),
		WordCount:          len(strings.Fields(text)),
	}
}

// tokenCounter estimates token counts for a model's encoding. The encoding
// is loaded lazily on first use; when it is unavailable (unknown model, no
// cached BPE data) counting degrades to zero rather than failing.
type tokenCounter struct {
	model    string
	once     sync.Once
	encoding *tiktoken.Tiktoken
}

func newTokenCounter(model string) *tokenCounter {
	return &tokenCounter{model: model}
}

func (t *tokenCounter) count(text string) int {
	if t == nil {
		return 0
	}
	t.once.Do(func() {
		encoding, err := tiktoken.EncodingForModel(t.model)
		if err != nil {
			encoding, _ = tiktoken.EncodingForModel("gpt-4o")
		}
		t.encoding = encoding
	})
	if t.encoding == nil {
		return 0
	}
	return len(t.encoding.Encode(text, nil, nil))
}
