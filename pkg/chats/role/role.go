// Package role defines the sender roles used in gateway conversations.
package role

// Role identifies who produced a message in a conversation.
type Role string

const (
	System    Role = "system"
	User      Role = "user"
	Assistant Role = "assistant"
	Tool      Role = "tool"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case System, User, Assistant, Tool:
		return true
	}
	return false
}

// String returns the wire form of the role. This is also the literal role
// label emitted inside chatml and llama3 turn headers.
func (r Role) String() string {
	return string(r)
}
