// Package chats provides the family-agnostic data model for conversations
// flowing through the gateway.
//
// It is organized into sub-packages:
//   - [github.com/ldelgado/promptgate/pkg/chats/role] — sender roles (system, user, assistant, tool)
//   - [github.com/ldelgado/promptgate/pkg/chats/message] — conversation turns carrying text, image references, and resolved tool calls
//
// Nothing in chats knows about model families or prompt markup — that is the
// renderer's job.
package chats
