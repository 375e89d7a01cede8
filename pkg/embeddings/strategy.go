// Package embeddings selects the hidden-state pooling strategy for embedding
// extraction.
package embeddings

import "strings"

// Strategy is the aggregation rule used to reduce per-token vectors to one
// fixed-size vector per input. This package only decides the tag; the vector
// math lives in the embedding-extraction routine.
type Strategy string

const (
	// CLS pools the first token, the convention for BERT-style encoders.
	CLS Strategy = "cls"
	// LastToken pools the final token, the convention for GPT-style decoders.
	LastToken Strategy = "last_token"
	// MeanNoSpecial averages all non-special tokens, the safe default.
	MeanNoSpecial Strategy = "mean_no_special"
)

// Select maps a model identifier to its pooling strategy. The identifier is
// an explicit parameter snapshot supplied by the caller; this function reads
// no shared state and is safe to call from any goroutine.
func Select(modelID string) Strategy {
	id := strings.ToLower(modelID)

	switch {
	case strings.Contains(id, "bert"), hasE5Token(id):
		return CLS
	case strings.Contains(id, "gpt"):
		return LastToken
	}
	return MeanNoSpecial
}

// hasE5Token reports whether the identifier names an E5-style embedding model
// ("e5" as a path or hyphen-delimited segment, e.g. "intfloat/e5-large-v2").
// A bare substring test would misfire on quantization suffixes like "2.5e5".
func hasE5Token(id string) bool {
	for _, tok := range strings.FieldsFunc(id, func(r rune) bool {
		return r == '/' || r == '-' || r == '_' || r == '.'
	}) {
		if tok == "e5" {
			return true
		}
	}
	return false
}

// String returns the underlying string value of the strategy tag.
func (s Strategy) String() string {
	return string(s)
}
