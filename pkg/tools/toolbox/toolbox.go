// Package toolbox holds tool definitions surfaced to models in prompts.
package toolbox

// ToolBox is an ordered collection of tool definitions. Registration order is
// caller-significant and preserved: the renderer serializes tools into the
// prompt in exactly this order.
type ToolBox struct {
	order []string
	tools map[string]Tool
}

// New creates a ToolBox pre-populated with the given tools.
func New(tools ...Tool) *ToolBox {
	tb := &ToolBox{tools: make(map[string]Tool)}
	tb.Register(tools...)
	return tb
}

// Register adds one or more tools. Re-registering a name replaces the
// definition but keeps its original position.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		if _, ok := tb.tools[t.Name]; !ok {
			tb.order = append(tb.order, t.Name)
		}
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Len returns the number of registered tools.
func (tb *ToolBox) Len() int {
	return len(tb.order)
}

// Tools returns all registered tools in registration order.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		result = append(result, tb.tools[name])
	}
	return result
}
