package mcptool

import (
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTool(t *testing.T) {
	sdkTool := &mcp.Tool{
		Name:        "get_weather",
		Description: "Look up current weather",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{"type": "string"},
			},
		},
	}

	tool, err := FromTool(sdkTool)
	require.NoError(t, err)
	assert.Equal(t, "get_weather", tool.Name)
	assert.Equal(t, "Look up current weather", tool.Description)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(tool.InputSchema, &schema))
	assert.Equal(t, "object", schema["type"])
}

func TestFromTool_NilSchema(t *testing.T) {
	tool, err := FromTool(&mcp.Tool{Name: "ping"})
	require.NoError(t, err)
	assert.Empty(t, tool.InputSchema)
	// The default object schema kicks in at render time.
	assert.Equal(t, json.RawMessage(`{"type":"object"}`), tool.Schema())
}

func TestFromTools_OrderPreserved(t *testing.T) {
	tools, err := FromTools([]*mcp.Tool{
		{Name: "zeta"},
		{Name: "alpha"},
	})

	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "zeta", tools[0].Name)
	assert.Equal(t, "alpha", tools[1].Name)
}
