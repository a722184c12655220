package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidatePayload checks an extracted LLM payload against one of the
// schemas from schema.go. It runs after the hand-rolled key/type checks,
// which own the user-facing messages; this pass catches anything they miss.
func ValidatePayload(schemaMap map[string]any, payload []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal payload schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("llm-payload.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("register payload schema: %w", err)
	}
	schema, err := compiler.Compile("llm-payload.json")
	if err != nil {
		return fmt.Errorf("compile payload schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
