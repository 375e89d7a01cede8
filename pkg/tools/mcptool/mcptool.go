// Package mcptool converts MCP tool descriptors into gateway tool
// definitions, so tools discovered over MCP can be surfaced to models inside
// rendered prompts.
package mcptool

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ldelgado/promptgate/pkg/tools/toolbox"
)

// FromTool converts one MCP tool descriptor into a prompt-ready definition.
func FromTool(t *mcp.Tool) (toolbox.Tool, error) {
	tool := toolbox.Tool{
		Name:        t.Name,
		Description: t.Description,
	}

	if t.InputSchema != nil {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			return toolbox.Tool{}, fmt.Errorf("mcptool: marshal input schema: %w", err)
		}
		tool.InputSchema = schema
	}

	return tool, nil
}

// FromTools converts a list of MCP tools, preserving order. Order matters:
// the renderer serializes tools into the prompt in the order given.
func FromTools(tools []*mcp.Tool) ([]toolbox.Tool, error) {
	out := make([]toolbox.Tool, 0, len(tools))
	for _, t := range tools {
		converted, err := FromTool(t)
		if err != nil {
			return nil, fmt.Errorf("mcptool: convert tool %q: %w", t.Name, err)
		}
		out = append(out, converted)
	}
	return out, nil
}
