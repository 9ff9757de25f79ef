package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface all LLM-callable tools must satisfy.
//
// Execute returns the tool's result payload, which is serialised into the
// conversation as a tool-role message. Domain-level failures (restaurant not
// found, invalid date, no tables) are reported inside the payload, not as a
// Go error; the error return is reserved for unexpected failures and is
// converted into a structured failure by the registry.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (any, error)
}
