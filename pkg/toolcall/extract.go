package toolcall

import (
	"encoding/json"
	"strings"
)

// Extract separates structured tool calls from raw model output.
//
// The returned content is always the complete input text — a discovered call
// never truncates or replaces what the model said. The call list is nil when
// no call could be recovered. Malformed or partial JSON anywhere is treated
// as "no call", never as an error, so Extract is safe to run on arbitrary
// model output.
func Extract(text string) (string, []Call) {
	if calls := matchAny(text); len(calls) > 0 {
		return text, calls
	}

	// The model may have wrapped the call in prose. Retry against the first
	// brace-delimited object substring.
	if obj, ok := firstObject(text); ok && obj != strings.TrimSpace(text) {
		if calls := matchAny(obj); len(calls) > 0 {
			return text, calls
		}
	}

	return text, nil
}

// matcher attempts to read one JSON surface shape. A false return means the
// text is not that shape; the chain moves on.
type matcher func(text string) ([]Call, bool)

// matchers are tried in order; the first success wins. Each shape is
// independent so it can be tested in isolation.
var matchers = []matcher{
	matchWrapped,
	matchArray,
	matchNamed,
	matchNameKeyed,
}

func matchAny(text string) []Call {
	for _, m := range matchers {
		if calls, ok := m(text); ok {
			return calls
		}
	}
	return nil
}

// reservedKeys are top-level keys that identify one of the explicit shapes;
// the name-as-key shape must not treat them as function names.
var reservedKeys = map[string]bool{
	"tool_calls": true,
	"name":       true,
	"arguments":  true,
	"function":   true,
}

// matchWrapped reads {"tool_calls":[...]}. Elements either already carry a
// "function" object or are bare {"name":...,"arguments":...} pairs that get
// wrapped into function form.
func matchWrapped(text string) ([]Call, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}

	raw, ok := obj["tool_calls"]
	if !ok {
		return nil, false
	}

	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}

	calls := make([]Call, 0, len(elems))
	for _, elem := range elems {
		call, ok := normalizeElement(elem)
		if !ok {
			return nil, false
		}
		calls = append(calls, call)
	}

	if len(calls) == 0 {
		return nil, false
	}
	return calls, true
}

// matchArray reads [{"name":...,"arguments":...}, ...], preserving order.
func matchArray(text string) ([]Call, bool) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, false
	}

	calls := make([]Call, 0, len(elems))
	for _, elem := range elems {
		name, ok := decodeName(elem["name"])
		if !ok {
			return nil, false
		}
		args, ok := decodeArguments(elem["arguments"])
		if !ok {
			return nil, false
		}
		calls = append(calls, New(name, args))
	}

	if len(calls) == 0 {
		return nil, false
	}
	return calls, true
}

// matchNamed reads a single {"name":...,"arguments":...} object.
func matchNamed(text string) ([]Call, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}

	name, ok := decodeName(obj["name"])
	if !ok {
		return nil, false
	}
	args, ok := decodeArguments(obj["arguments"])
	if !ok {
		return nil, false
	}

	return []Call{New(name, args)}, true
}

// matchNameKeyed reads the "tool name as key" shape: a single-key object
// whose key is not reserved and whose value is the arguments object,
// e.g. {"get_weather":{"location":"NYC"}}.
func matchNameKeyed(text string) ([]Call, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	if len(obj) != 1 {
		return nil, false
	}

	for name, raw := range obj {
		if reservedKeys[name] {
			return nil, false
		}
		var args map[string]any
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, false
		}
		return []Call{New(name, args)}, true
	}

	return nil, false
}

// normalizeElement converts one tool_calls array element into canonical form.
func normalizeElement(elem map[string]json.RawMessage) (Call, bool) {
	var id string
	if raw, ok := elem["id"]; ok {
		// A non-string id is tolerated and dropped rather than failing the match.
		_ = json.Unmarshal(raw, &id)
	}

	fn := elem
	if raw, ok := elem["function"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Call{}, false
		}
		fn = inner
	}

	name, ok := decodeName(fn["name"])
	if !ok {
		return Call{}, false
	}
	args, ok := decodeArguments(fn["arguments"])
	if !ok {
		return Call{}, false
	}

	call := New(name, args)
	call.ID = id
	return call, true
}

func decodeName(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil || name == "" {
		return "", false
	}
	return name, true
}

// decodeArguments accepts a JSON object, a string-encoded JSON object (some
// models double-encode arguments), or nothing at all.
func decodeArguments(raw json.RawMessage) (map[string]any, bool) {
	if raw == nil {
		return map[string]any{}, true
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil {
		if args == nil {
			args = map[string]any{}
		}
		return args, true
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &args); err == nil {
			return args, true
		}
	}

	return nil, false
}

// firstObject returns the first brace-delimited substring of text, balancing
// braces while skipping string literals. A truncated object never balances
// and reports false.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
