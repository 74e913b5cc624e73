package generator

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ResultJSONSchema returns the JSON schema of the Result payload, for
// downstream consumers that render or validate generation results.
func ResultJSONSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&Result{})
	return json.MarshalIndent(schema, "", "  ")
}
