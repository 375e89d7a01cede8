package prompt

import (
	"encoding/json"
	"strings"

	"github.com/ldelgado/promptgate/pkg/toolcall"
	"github.com/ldelgado/promptgate/pkg/tools/toolbox"
)

const toolInstruction = `You have access to the following tools. To call a tool, respond with a JSON object of the form {"name": <tool-name>, "arguments": <arguments-object>}.`

type schemaDef struct {
	Type     string     `json:"type"`
	Function schemaFunc `json:"function"`
}

type schemaFunc struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// toolSchemaBlock serializes tool definitions into the instruction block
// embedded in the prompt's system area (or first user turn, for gemma). One
// JSON object per tool, caller order preserved. Struct-tagged marshaling
// keeps the block byte-stable for a given tool list.
func toolSchemaBlock(tools []toolbox.Tool) string {
	var b strings.Builder
	b.WriteString(toolInstruction)
	b.WriteString("\n")

	for _, t := range tools {
		def := schemaDef{
			Type: toolcall.TypeFunction,
			Function: schemaFunc{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Schema(),
			},
		}
		data, err := json.Marshal(def)
		if err != nil {
			// Schema bytes are caller-provided; an unserializable one is
			// skipped rather than failing the render.
			continue
		}
		b.WriteString("\n")
		b.Write(data)
	}

	return b.String()
}

type historyCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// toolCallText renders resolved assistant tool calls back into transcript
// form, one JSON object per line, in call order.
func toolCallText(calls []toolcall.Call) string {
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		data, err := json.Marshal(historyCall{
			Name:      c.Function.Name,
			Arguments: c.Function.Arguments,
		})
		if err != nil {
			continue
		}
		lines = append(lines, string(data))
	}
	return strings.Join(lines, "\n")
}
