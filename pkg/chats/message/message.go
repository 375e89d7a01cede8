// Package message defines the conversation turn type consumed by the renderer.
package message

import (
	"github.com/ldelgado/promptgate/pkg/chats/role"
	"github.com/ldelgado/promptgate/pkg/toolcall"
)

// Image is an opaque reference to an image attached to a message. The
// renderer only counts images to emit placeholder tokens; the bytes
// themselves pass through to the inference engine untouched.
type Image []byte

// Message is a single conversation turn. It is a value type that copies
// cheaply. ToolCalls is populated only on assistant messages that already
// carry resolved calls.
type Message struct {
	Role      role.Role
	Content   string
	Images    []Image
	ToolCalls []toolcall.Call
}

// New creates a message with the given role and text content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}

// NewWithImages creates a message carrying ordered image references.
func NewWithImages(r role.Role, content string, images ...Image) Message {
	return Message{Role: r, Content: content, Images: images}
}

// HasToolCalls reports whether the message carries resolved tool calls.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}
