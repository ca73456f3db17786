package directive

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep4sh/randgen/internal/diagnostic"
)

func TestParseTag_Empty(t *testing.T) {
	list, err := ParseTag(reflect.StructTag(`json:"name"`))

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseTag_SingleDirectives(t *testing.T) {
	tests := []struct {
		tag  string
		kind Kind
	}{
		{`rand:"panic"`, Panic},
		{`rand:"custom"`, Custom},
		{`rand:"nil"`, AlwaysNil},
		{`rand:"set"`, AlwaysSet},
		{`rand:"empty"`, Empty},
		{`rand:"default"`, Default},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			list, err := ParseTag(reflect.StructTag(tt.tag))

			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.True(t, list.Has(tt.kind))
		})
	}
}

func TestParseTag_Value(t *testing.T) {
	list, err := ParseTag(reflect.StructTag(`rand:"value=hello world"`))

	require.NoError(t, err)

	lit, ok := list.FixedValue()
	require.True(t, ok)
	assert.Equal(t, "hello world", lit)
}

func TestParseTag_ValueKeepsEquals(t *testing.T) {
	// Only the first '=' splits; the literal is taken verbatim.
	list, err := ParseTag(reflect.StructTag(`rand:"value=a=b"`))

	require.NoError(t, err)

	lit, ok := list.FixedValue()
	require.True(t, ok)
	assert.Equal(t, "a=b", lit)
}

func TestParseTag_Combined(t *testing.T) {
	list, err := ParseTag(reflect.StructTag(`rand:"set,value=banner"`))

	require.NoError(t, err)
	assert.True(t, list.Has(AlwaysSet))
	assert.True(t, list.Has(Value))
	assert.False(t, list.Has(Panic))
}

func TestParseTag_Unknown(t *testing.T) {
	_, err := ParseTag(reflect.StructTag(`rand:"sometimes"`))

	require.Error(t, err)

	var derr *diagnostic.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diagnostic.CodeUnknownDirective, derr.Code)
}

func TestParse_DuplicatesCollapse(t *testing.T) {
	list, err := Parse([]string{"set", "set", "value=a", "value=b"})

	require.NoError(t, err)
	assert.Len(t, list, 2)

	lit, ok := list.FixedValue()
	require.True(t, ok)
	assert.Equal(t, "a", lit)
}

func TestMerge(t *testing.T) {
	tag, err := Parse([]string{"set"})
	require.NoError(t, err)

	override, err := Parse([]string{"set", "value=x"})
	require.NoError(t, err)

	merged := tag.Merge(override)
	assert.Len(t, merged, 2)
	assert.True(t, merged.Has(AlwaysSet))
	assert.True(t, merged.Has(Value))
}

func TestDirective_String(t *testing.T) {
	assert.Equal(t, "panic", Directive{Kind: Panic}.String())
	assert.Equal(t, "nil", Directive{Kind: AlwaysNil}.String())
	assert.Equal(t, "set", Directive{Kind: AlwaysSet}.String())
	assert.Equal(t, "value=42", Directive{Kind: Value, Literal: "42"}.String())
}
