// Package llm holds the model boundary for listing generation: the Generator
// transport interface, the content-generation prompt, and tolerant parsing of
// model responses into typed output.
package llm

import "context"

// Default sampling temperature for narrative content generation.
const ContentTemperature float32 = 0.7

// Generator is the LLM transport the pipeline depends on: one prompt in, one
// text completion out. Implementations honor ctx cancellation; there is no
// retry and no streaming.
type Generator interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}
