package toolbox

import "encoding/json"

// Tool describes a callable function surfaced to the model inside the
// rendered prompt: a name, a human description, and a JSON Schema for its
// parameters. The gateway never executes tools.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Schema returns the tool's parameter schema, defaulting to an empty object
// schema when none was provided.
func (t Tool) Schema() json.RawMessage {
	if len(t.InputSchema) == 0 {
		return json.RawMessage(`{"type":"object"}`)
	}
	return t.InputSchema
}
