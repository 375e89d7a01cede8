// Package family classifies model identifiers into prompt-markup families.
//
// A family is a conversational markup convention (token vocabulary and turn
// structure) shared by a group of architectures or fine-tunes. Classification
// is a pure function of the identifier string; both the classifier and the
// renderer switch on the same closed tag set, so adding a family is a single
// compile-checked change.
package family

import "strings"

// Family is a closed tag identifying a prompt-markup convention.
type Family string

const (
	Qwen    Family = "qwen"
	Llama2  Family = "llama2"
	Llama3  Family = "llama3"
	Mistral Family = "mistral"
	Gemma   Family = "gemma"
	ChatML  Family = "chatml"
)

// Detect maps a model identifier to its markup family. It is total,
// deterministic, and case-insensitive; identifiers matching no known keyword
// use the chatml default. Keyword priority is fixed: first match wins.
func Detect(modelID string) Family {
	id := strings.ToLower(modelID)

	switch {
	case strings.Contains(id, "qwen"):
		return Qwen
	case strings.Contains(id, "llama"):
		if strings.Contains(id, "llama-3") || strings.Contains(id, "llama3") {
			return Llama3
		}
		return Llama2
	case strings.Contains(id, "mistral"), strings.Contains(id, "mixtral"):
		return Mistral
	case strings.Contains(id, "gemma"):
		return Gemma
	}

	// phi and smollm have no dedicated template; they share the chatml
	// default along with everything else we do not recognize.
	return ChatML
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	switch f {
	case Qwen, Llama2, Llama3, Mistral, Gemma, ChatML:
		return true
	}
	return false
}

// String returns the underlying string value of the family tag.
func (f Family) String() string {
	return string(f)
}
