// Package toolcall defines the canonical tool-call representation and the
// extractor that recovers calls from raw model output.
package toolcall

// TypeFunction is the only call type the gateway emits.
const TypeFunction = "function"

// Call is the canonical form of a function invocation, independent of which
// surface JSON shape the model emitted. It marshals to the gateway's external
// chat-completion tool_calls element.
type Call struct {
	ID       string   `json:"id,omitempty"`
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function carries the invoked function's name and decoded arguments.
type Function struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// New creates a Call for the given function name and arguments.
func New(name string, args map[string]any) Call {
	if args == nil {
		args = map[string]any{}
	}
	return Call{
		Type:     TypeFunction,
		Function: Function{Name: name, Arguments: args},
	}
}
