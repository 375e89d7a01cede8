// Package prompt renders conversations into the literal markup each model
// family expects.
//
// Render is a fold over the ordered turn list branching on the detected
// family. The emitted markers are the external protocol toward the inference
// engine and must match the family's documented template byte for byte. Every
// rendered prompt ends ready for the model to continue an open assistant
// turn. Rendering never fails: unknown families use the chatml template.
package prompt

import (
	"strings"

	"github.com/ldelgado/promptgate/pkg/chats/message"
	"github.com/ldelgado/promptgate/pkg/chats/role"
	"github.com/ldelgado/promptgate/pkg/family"
	"github.com/ldelgado/promptgate/pkg/tools/toolbox"
)

// DefaultSystemPrompt is used when the conversation carries no system turn.
const DefaultSystemPrompt = "You are a helpful assistant."

// Render produces the family-specific prompt for the given conversation and
// tool definitions. Tool order in the rendered schema block matches the
// caller-supplied order.
func Render(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	switch family.Detect(modelID) {
	case family.Llama3:
		return renderLlama3(msgs, tools, modelID)
	case family.Llama2:
		return renderLlama2(msgs, tools, modelID)
	case family.Mistral:
		return renderMistral(msgs, tools, modelID)
	case family.Gemma:
		return renderGemma(msgs, tools, modelID)
	case family.Qwen, family.ChatML:
		return renderChatML(msgs, tools, modelID)
	}
	return renderChatML(msgs, tools, modelID)
}

func renderChatML(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	var b strings.Builder

	b.WriteString("<|im_start|>system\n")
	b.WriteString(systemPreamble(msgs, DefaultSystemPrompt))
	if len(tools) > 0 {
		b.WriteString("\n\n")
		b.WriteString(toolSchemaBlock(tools))
	}
	b.WriteString("<|im_end|>\n")

	for _, m := range msgs {
		if m.Role == role.System {
			continue
		}
		b.WriteString("<|im_start|>")
		b.WriteString(m.Role.String())
		b.WriteString("\n")
		b.WriteString(turnText(modelID, m))
		b.WriteString("<|im_end|>\n")
	}

	b.WriteString("<|im_start|>assistant\n")
	return b.String()
}

func renderLlama3(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	var b strings.Builder

	b.WriteString("<|begin_of_text|>")
	b.WriteString("<|start_header_id|>system<|end_header_id|>\n\n")
	b.WriteString(systemPreamble(msgs, DefaultSystemPrompt))
	if len(tools) > 0 {
		b.WriteString("\n\n")
		b.WriteString(toolSchemaBlock(tools))
	}
	b.WriteString("<|eot_id|>")

	for _, m := range msgs {
		if m.Role == role.System {
			continue
		}
		b.WriteString("<|start_header_id|>")
		b.WriteString(m.Role.String())
		b.WriteString("<|end_header_id|>\n\n")
		b.WriteString(turnText(modelID, m))
		b.WriteString("<|eot_id|>")
	}

	b.WriteString("<|start_header_id|>assistant<|end_header_id|>\n\n")
	return b.String()
}

func renderLlama2(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	var b strings.Builder

	b.WriteString("[INST] <<SYS>>\n")
	b.WriteString(systemPreamble(msgs, DefaultSystemPrompt))
	if len(tools) > 0 {
		b.WriteString("\n\n")
		b.WriteString(toolSchemaBlock(tools))
	}
	b.WriteString("\n<</SYS>>\n\n")

	// The system block opens the first [INST]; the first user turn closes it.
	firstUser := true
	for _, m := range msgs {
		switch m.Role {
		case role.System:
			continue
		case role.Assistant:
			b.WriteString(" ")
			b.WriteString(turnText(modelID, m))
			b.WriteString(" </s><s>")
		default:
			if firstUser {
				b.WriteString(turnText(modelID, m))
				b.WriteString(" [/INST]")
				firstUser = false
				continue
			}
			b.WriteString("[INST] ")
			b.WriteString(turnText(modelID, m))
			b.WriteString(" [/INST]")
		}
	}

	return b.String()
}

func renderMistral(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	var b strings.Builder

	b.WriteString("<s>")

	firstUser := true
	for _, m := range msgs {
		switch m.Role {
		case role.System:
			continue
		case role.Assistant:
			b.WriteString(turnText(modelID, m))
			b.WriteString("</s>")
		default:
			b.WriteString("[INST] ")
			if firstUser {
				b.WriteString(systemPreamble(msgs, DefaultSystemPrompt))
				if len(tools) > 0 {
					b.WriteString("\n\n")
					b.WriteString(toolSchemaBlock(tools))
				}
				b.WriteString("\n\n")
				firstUser = false
			}
			b.WriteString(turnText(modelID, m))
			b.WriteString(" [/INST]")
		}
	}

	return b.String()
}

func renderGemma(msgs []message.Message, tools []toolbox.Tool, modelID string) string {
	var b strings.Builder

	// Gemma has no system role: explicit system content is folded into the
	// first user turn, and the tool block is appended to it.
	sys := systemPreamble(msgs, "")

	firstUser := true
	for _, m := range msgs {
		switch m.Role {
		case role.System:
			continue
		case role.Assistant:
			b.WriteString("<start_of_turn>model\n")
			b.WriteString(turnText(modelID, m))
			b.WriteString("<end_of_turn>\n")
		default:
			b.WriteString("<start_of_turn>user\n")
			if firstUser && sys != "" {
				b.WriteString(sys)
				b.WriteString("\n\n")
			}
			b.WriteString(turnText(modelID, m))
			if firstUser && len(tools) > 0 {
				b.WriteString("\n\n")
				b.WriteString(toolSchemaBlock(tools))
			}
			b.WriteString("<end_of_turn>\n")
			firstUser = false
		}
	}

	b.WriteString("<start_of_turn>model\n")
	return b.String()
}

// systemPreamble joins the content of all system turns in order, falling back
// to the given default when the conversation carries none.
func systemPreamble(msgs []message.Message, fallback string) string {
	var parts []string
	for _, m := range msgs {
		if m.Role == role.System && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, "\n\n")
}

// turnText emits a turn's body: one image placeholder per attached image, in
// image order, each on its own line, followed by the text content. Assistant
// turns that carry resolved tool calls and no text render the calls instead.
func turnText(modelID string, m message.Message) string {
	var b strings.Builder
	for i := range m.Images {
		b.WriteString(ImageToken(modelID, i))
		b.WriteString("\n")
	}
	if m.Content == "" && m.HasToolCalls() {
		b.WriteString(toolCallText(m.ToolCalls))
		return b.String()
	}
	b.WriteString(m.Content)
	return b.String()
}
