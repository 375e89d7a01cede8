package toolcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_WrappedShape(t *testing.T) {
	text := `{"tool_calls":[{"function":{"name":"get_weather","arguments":{"location":"SF"}}}]}`

	content, calls := Extract(text)

	assert.Equal(t, text, content)
	require.Len(t, calls, 1)
	assert.Equal(t, "get_weather", calls[0].Function.Name)
	assert.Equal(t, map[string]any{"location": "SF"}, calls[0].Function.Arguments)
	assert.Equal(t, TypeFunction, calls[0].Type)
}

func TestExtract_WrappedShape_BareElements(t *testing.T) {
	text := `{"tool_calls":[{"name":"lookup","arguments":{"id":"42"}}]}`

	_, calls := Extract(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "lookup", calls[0].Function.Name)
	assert.Equal(t, map[string]any{"id": "42"}, calls[0].Function.Arguments)
}

func TestExtract_WrappedShape_KeepsID(t *testing.T) {
	text := `{"tool_calls":[{"id":"call_9","function":{"name":"ping","arguments":{}}}]}`

	_, calls := Extract(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "call_9", calls[0].ID)
}

func TestExtract_ArrayShape(t *testing.T) {
	text := `[{"name":"func1","arguments":{}},{"name":"func2","arguments":{}}]`

	content, calls := Extract(text)

	assert.Equal(t, text, content)
	require.Len(t, calls, 2)
	assert.Equal(t, "func1", calls[0].Function.Name)
	assert.Equal(t, "func2", calls[1].Function.Name)
}

func TestExtract_NamedShape(t *testing.T) {
	text := `{"name":"search","arguments":{"query":"golang"}}`

	_, calls := Extract(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "search", calls[0].Function.Name)
	assert.Equal(t, map[string]any{"query": "golang"}, calls[0].Function.Arguments)
}

func TestExtract_NameKeyedShape(t *testing.T) {
	text := `{"get_weather":{"location":"NYC"}}`

	_, calls := Extract(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "get_weather", calls[0].Function.Name)
	assert.Equal(t, map[string]any{"location": "NYC"}, calls[0].Function.Arguments)
}

func TestExtract_NameKeyedShape_ReservedKeyRejected(t *testing.T) {
	_, calls := Extract(`{"function":{"location":"NYC"}}`)
	assert.Nil(t, calls)

	_, calls = Extract(`{"arguments":{"location":"NYC"}}`)
	assert.Nil(t, calls)
}

func TestExtract_NameKeyedShape_NonObjectValueRejected(t *testing.T) {
	_, calls := Extract(`{"get_weather":"NYC"}`)
	assert.Nil(t, calls)
}

func TestExtract_EmbeddedInProse(t *testing.T) {
	text := `Sure, let me check that. {"name":"get_weather","arguments":{"location":"SF"}} One moment.`

	content, calls := Extract(text)

	assert.Equal(t, text, content, "content must stay the full original text")
	require.Len(t, calls, 1)
	assert.Equal(t, "get_weather", calls[0].Function.Name)
}

func TestExtract_PlainText(t *testing.T) {
	text := "This is just regular text."

	content, calls := Extract(text)

	assert.Equal(t, text, content)
	assert.Nil(t, calls)
}

func TestExtract_MalformedJSON(t *testing.T) {
	text := `{"tool_calls": [broken json`

	content, calls := Extract(text)

	assert.Equal(t, text, content)
	assert.Nil(t, calls)
}

func TestExtract_EmptyInput(t *testing.T) {
	content, calls := Extract("")

	assert.Empty(t, content)
	assert.Nil(t, calls)
}

func TestExtract_StringEncodedArguments(t *testing.T) {
	text := `{"name":"search","arguments":"{\"query\":\"golang\"}"}`

	_, calls := Extract(text)

	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"query": "golang"}, calls[0].Function.Arguments)
}

func TestExtract_MissingArgumentsDefaultsEmpty(t *testing.T) {
	_, calls := Extract(`{"name":"ping"}`)

	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{}, calls[0].Function.Arguments)
}

func TestExtract_Idempotent(t *testing.T) {
	texts := []string{
		`{"name":"search","arguments":{"query":"golang"}}`,
		`prose then {"get_weather":{"location":"NYC"}} more prose`,
		"no calls here",
	}

	for _, text := range texts {
		c1, calls1 := Extract(text)
		c2, calls2 := Extract(text)
		assert.Equal(t, c1, c2)
		assert.Equal(t, calls1, calls2)
	}
}

func TestExtract_OrderPreserved(t *testing.T) {
	text := `{"tool_calls":[{"name":"a","arguments":{}},{"name":"b","arguments":{}},{"name":"c","arguments":{}}]}`

	_, calls := Extract(text)

	require.Len(t, calls, 3)
	assert.Equal(t, "a", calls[0].Function.Name)
	assert.Equal(t, "b", calls[1].Function.Name)
	assert.Equal(t, "c", calls[2].Function.Name)
}

func TestExtract_EmptyToolCallsArray(t *testing.T) {
	_, calls := Extract(`{"tool_calls":[]}`)
	assert.Nil(t, calls)
}

func TestExtract_TruncatedObjectInProse(t *testing.T) {
	content, calls := Extract(`thinking... {"name":"get_weather","arguments":{"location"`)

	assert.Contains(t, content, "thinking")
	assert.Nil(t, calls)
}

func TestFirstObject(t *testing.T) {
	obj, ok := firstObject(`before {"a":{"b":1}} after`)
	assert.True(t, ok)
	assert.Equal(t, `{"a":{"b":1}}`, obj)
}

func TestFirstObject_BracesInsideStrings(t *testing.T) {
	obj, ok := firstObject(`x {"a":"close } brace"} y`)
	assert.True(t, ok)
	assert.Equal(t, `{"a":"close } brace"}`, obj)
}

func TestFirstObject_Unbalanced(t *testing.T) {
	_, ok := firstObject(`{"a": {"b": 1`)
	assert.False(t, ok)

	_, ok = firstObject("no braces")
	assert.False(t, ok)
}

func TestNew_NilArguments(t *testing.T) {
	call := New("ping", nil)

	assert.Equal(t, TypeFunction, call.Type)
	assert.NotNil(t, call.Function.Arguments)
	assert.Empty(t, call.Function.Arguments)
}
