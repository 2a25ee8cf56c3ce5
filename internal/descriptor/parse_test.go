package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_Primitive(t *testing.T) {
	typ, err := ParseType("string")
	require.NoError(t, err)
	assert.Equal(t, "string", typ.Name)
	assert.Equal(t, KindPrimitive, typ.Kind)
	assert.Empty(t, typ.Args)
}

func TestParseType_QualifiedName(t *testing.T) {
	typ, err := ParseType("com.example.Order")
	require.NoError(t, err)
	assert.Equal(t, "com.example.Order", typ.Name)
	assert.Equal(t, KindDeclared, typ.Kind)
	assert.Equal(t, "Order", typ.SimpleName())
}

func TestParseType_Array(t *testing.T) {
	typ, err := ParseType("[]int")
	require.NoError(t, err)
	assert.Equal(t, KindArray, typ.Kind)
	require.NotNil(t, typ.Elem)
	assert.Equal(t, "int", typ.Elem.Name)
	assert.Equal(t, KindPrimitive, typ.Elem.Kind)
}

func TestParseType_NestedArray(t *testing.T) {
	typ, err := ParseType("[][]string")
	require.NoError(t, err)
	assert.Equal(t, KindArray, typ.Kind)
	require.NotNil(t, typ.Elem)
	assert.Equal(t, KindArray, typ.Elem.Kind)
	assert.Equal(t, "string", typ.Elem.Elem.Name)
}

func TestParseType_GenericArguments(t *testing.T) {
	typ, err := ParseType("map<string, com.example.Item>")
	require.NoError(t, err)
	assert.Equal(t, "map", typ.Name)
	require.Len(t, typ.Args, 2)
	assert.Equal(t, "string", typ.Args[0].Name)
	assert.Equal(t, "com.example.Item", typ.Args[1].Name)
}

func TestParseType_NestedGenerics(t *testing.T) {
	typ, err := ParseType("map<string,list<com.example.Item>>")
	require.NoError(t, err)
	require.Len(t, typ.Args, 2)

	inner := typ.Args[1]
	assert.Equal(t, "list", inner.Name)
	require.Len(t, inner.Args, 1)
	assert.Equal(t, "com.example.Item", inner.Args[0].Name)
}

func TestParseType_ArrayOfGeneric(t *testing.T) {
	typ, err := ParseType("[]list<string>")
	require.NoError(t, err)
	assert.Equal(t, KindArray, typ.Kind)
	assert.Equal(t, "list", typ.Elem.Name)
	require.Len(t, typ.Elem.Args, 1)
}

func TestParseType_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"list<",
		"list<string",
		"list<string,",
		"map<string string>",
		"Order extra",
		"<string>",
		"[]",
	} {
		_, err := ParseType(expr)
		assert.Error(t, err, "expression %q", expr)
	}
}

func TestTypeString_RoundTrip(t *testing.T) {
	for _, expr := range []string{
		"string",
		"com.example.Order",
		"[]int",
		"list<com.example.Item>",
		"map<string,list<com.example.Item>>",
	} {
		typ, err := ParseType(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, typ.String())
	}
}

func TestFieldIgnore(t *testing.T) {
	assert.False(t, Field{Name: "a"}.Ignore())
	assert.True(t, Field{Name: "a", Static: true}.Ignore())
	assert.True(t, Field{Name: "a", Transient: true}.Ignore())
	assert.True(t, Field{Name: "a", Hidden: true}.Ignore())
}

func TestDeriveHidden(t *testing.T) {
	assert.False(t, deriveHidden(nil))
	assert.False(t, deriveHidden([]string{"Deprecated", "Internal"}))
	assert.True(t, deriveHidden([]string{"Hidden"}))
	assert.True(t, deriveHidden([]string{"JsonIgnore"}))

	// Qualified tag names match on the simple name.
	assert.True(t, deriveHidden([]string{"com.example.annotations.Hidden"}))
	assert.True(t, deriveHidden([]string{"com.fasterxml.jackson.annotation.JsonIgnore"}))

	// Match is case-sensitive and exact.
	assert.False(t, deriveHidden([]string{"hidden"}))
	assert.False(t, deriveHidden([]string{"HiddenField"}))
}
