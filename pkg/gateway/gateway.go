// Package gateway orchestrates the adapter core: classify the model once,
// render the prompt, call the inference engine, and recover structured tool
// calls from its raw output.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ldelgado/promptgate/pkg/chats/message"
	"github.com/ldelgado/promptgate/pkg/chats/role"
	"github.com/ldelgado/promptgate/pkg/family"
	"github.com/ldelgado/promptgate/pkg/prompt"
	"github.com/ldelgado/promptgate/pkg/toolcall"
	"github.com/ldelgado/promptgate/pkg/tools/toolbox"
)

// Request is what the gateway hands to the inference engine: a literal,
// family-specific prompt plus sampling options. The engine performs all
// tokenization and tensor work.
type Request struct {
	Model   string
	Prompt  string
	Options GenerateOptions
}

// Generator is the external inference runtime at its interface. It consumes a
// rendered prompt verbatim and returns the raw completion text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Gateway ties the adapter core together in front of a Generator. It holds no
// mutable state of its own and is safe for concurrent use.
type Gateway struct {
	gen Generator
	cfg Config
	log *slog.Logger
}

// New creates a Gateway backed by the given generator. A nil logger discards
// log output.
func New(gen Generator, cfg Config, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Gateway{gen: gen, cfg: cfg, log: log}
}

// Complete renders the conversation for the given model, runs generation, and
// returns the assistant's reply with any tool calls the model made. Raw model
// output is never discarded: the reply content is the engine's full text even
// when calls were extracted. Extracted calls that carried no id are assigned
// one.
func (g *Gateway) Complete(ctx context.Context, modelID string, msgs []message.Message, tools []toolbox.Tool) (message.Message, error) {
	if modelID == "" {
		modelID = g.cfg.DefaultModel
	}
	msgs = g.withSystemPrompt(msgs)

	fam := family.Detect(modelID)
	rendered := prompt.Render(msgs, tools, modelID)
	g.log.Debug("rendered prompt",
		"model", modelID,
		"family", fam.String(),
		"turns", len(msgs),
		"tools", len(tools),
		"prompt_bytes", len(rendered),
	)

	raw, err := g.gen.Generate(ctx, Request{
		Model:   modelID,
		Prompt:  rendered,
		Options: g.cfg.Options,
	})
	if err != nil {
		return message.Message{}, fmt.Errorf("gateway: generate: %w", err)
	}

	content, calls := toolcall.Extract(raw)
	for i := range calls {
		if calls[i].ID == "" {
			calls[i].ID = "call_" + uuid.NewString()
		}
	}
	g.log.Debug("extracted completion", "model", modelID, "tool_calls", len(calls))

	reply := message.New(role.Assistant, content)
	reply.ToolCalls = calls
	return reply, nil
}

// withSystemPrompt prepends the configured fallback system prompt when the
// conversation carries no system turn of its own.
func (g *Gateway) withSystemPrompt(msgs []message.Message) []message.Message {
	if g.cfg.SystemPrompt == "" {
		return msgs
	}
	for _, m := range msgs {
		if m.Role == role.System {
			return msgs
		}
	}
	out := make([]message.Message, 0, len(msgs)+1)
	out = append(out, message.New(role.System, g.cfg.SystemPrompt))
	return append(out, msgs...)
}
