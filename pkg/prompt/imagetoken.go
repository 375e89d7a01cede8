package prompt

import (
	"fmt"
	"strings"
)

// DefaultImageToken is the constant placeholder emitted for models without a
// model-specific image token convention.
const DefaultImageToken = "<image>"

// ImageToken returns the literal placeholder for the image at the given
// zero-based position within a message. Qwen-VL models number their
// placeholders, displayed one-indexed; every other model uses the same
// constant token regardless of position.
func ImageToken(modelID string, index int) string {
	id := strings.ToLower(modelID)
	if strings.Contains(id, "qwen") && strings.Contains(id, "vl") {
		return fmt.Sprintf("<image_%d>", index+1)
	}
	return DefaultImageToken
}
