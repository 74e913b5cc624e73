package generator

import (
	"fmt"
	"strings"
)

// System roles for the two outbound calls.
const (
	generateSystemPrompt = "You are an expert prompt engineer. You write clear, reusable prompt templates that reliably produce high-quality results."
	testSystemPrompt     = "You are a helpful assistant following the instructions provided."
)

// metaPrompt is the fixed instruction block sent to the model when
// synthesizing a new template. The task description is interpolated into the
// single trailing placeholder. The text is a wire-format constant; changing it
// changes the shape of every generated template.
const metaPrompt = `Given a task description, produce a detailed prompt template to guide a language model in completing the task effectively.

# Guidelines

- Understand the Task: Grasp the main objective, goals, requirements, constraints, and expected output.
- Reasoning Before Conclusions: Encourage reasoning steps before any conclusions are reached. ATTENTION! If the user provides examples where the reasoning happens afterward, REVERSE the order! NEVER START EXAMPLES WITH CONCLUSIONS!
    - Reasoning Order: Call out reasoning portions of the prompt and conclusion parts (specific fields by name). For each, determine the ORDER in which this is done, and whether it needs to be reversed.
    - Conclusions, classifications, or results should ALWAYS appear last.
- Examples: Include high-quality examples if helpful, using placeholders for complex elements.
    - Consider what kinds of examples may need to be included, how many, and whether they are complex enough to benefit from placeholders.
- Variables: Use the {{VARIABLE_NAME}} syntax (double curly braces, UPPER_SNAKE_CASE) for any content that will be substituted at use time, such as inputs the end user provides.
- Clarity and Conciseness: Use clear, specific language. Avoid unnecessary instructions or bland statements.
- Formatting: Use markdown features for readability. DO NOT USE CODE BLOCKS UNLESS SPECIFICALLY REQUESTED.
- Preserve User Content: If the task description includes extensive guidelines or examples, preserve them entirely, or as closely as possible. If they are vague, consider breaking them down into sub-steps. Keep any details, guidelines, examples, variables, or placeholders provided by the user.
- Constants: DO include constants in the prompt, as they are not susceptible to prompt injection. Such as guides, rubrics, and examples.
- Output Format: Explicitly state the most appropriate output format, in detail. This should include length and syntax (e.g. short sentence, paragraph, JSON, etc.)
    - For tasks outputting well-defined or structured data (classification, JSON, etc.) bias towards outputting JSON.
    - JSON should never be wrapped in code blocks unless explicitly requested.

The final prompt you output should adhere to the following structure. Do not include any additional commentary; only output the completed prompt template. SPECIFICALLY, do not include any additional messages at the start or end of the prompt.

[Concise instruction describing the task - this should be the first line in the prompt, no section header]

[Additional details as needed.]

[Optional sections with headings or bullet points for detailed steps.]

# Steps [optional]

[optional: a detailed breakdown of the steps necessary to accomplish the task]

# Output Format

[Specifically call out how the output should be formatted, be it response length, structure e.g. JSON, markdown, etc]

# Examples [optional]

[Optional: 1-3 well-defined examples with placeholders if necessary. Clearly mark where examples start and end, and what the input and output are. Use placeholders as necessary.]

# Notes [optional]

[optional: edge cases, details, and an area to call out specific important considerations]

Task description:

%s`

// buildMetaPrompt assembles the user message for a generation request.
// When explicit variables are supplied, an instruction naming each of them in
// marker syntax is appended so the model uses exactly that set.
func buildMetaPrompt(taskDescription string, explicitVariables []string) string {
	prompt := fmt.Sprintf(metaPrompt, taskDescription)
	if len(explicitVariables) == 0 {
		return prompt
	}

	markers := make([]string, 0, len(explicitVariables))
	for _, name := range explicitVariables {
		markers = append(markers, "{{"+name+"}}")
	}
	return prompt + "\n\nUse exactly these variables in the template: " + strings.Join(markers, ", ") + "."
}
