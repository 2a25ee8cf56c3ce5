package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
)

func mustType(t *testing.T, expr string) *descriptor.Type {
	t.Helper()
	typ, err := descriptor.ParseType(expr)
	require.NoError(t, err)
	return typ
}

func field(t *testing.T, name, expr string) descriptor.Field {
	t.Helper()
	return descriptor.Field{Name: name, Type: mustType(t, expr)}
}

func newTestBuilder(t *testing.T, descs ...*descriptor.TypeDescriptor) *Builder {
	t.Helper()
	return NewBuilder(descriptor.NewGraph(descs))
}

func TestToSchema_Primitives(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(mustType(t, "string"))
	assert.Equal(t, "string", s.Type)
	assert.Empty(t, s.Format)

	s = b.ToSchema(mustType(t, "int64"))
	assert.Equal(t, "integer", s.Type)
	assert.Equal(t, "int64", s.Format)

	s = b.ToSchema(mustType(t, "uuid"))
	assert.Equal(t, "string", s.Type)
	assert.Equal(t, "uuid", s.Format)

	// Primitive lookup short-circuits: nothing reaches the registry.
	assert.Equal(t, 0, b.Registry().Len())
}

func TestToSchema_ObjectScenario(t *testing.T) {
	// Address{street string; city string} with no superclass.
	b := newTestBuilder(t, &descriptor.TypeDescriptor{
		Name: "example.Address",
		Fields: []descriptor.Field{
			field(t, "street", "string"),
			field(t, "city", "string"),
		},
	})

	ref := b.ToSchema(mustType(t, "example.Address"))
	require.True(t, ref.IsRef())
	assert.Equal(t, "Address", ref.RefName())

	require.Equal(t, 1, b.Registry().Len())
	def := b.Registry().Definitions()["Address"]
	require.NotNil(t, def)
	assert.Equal(t, []string{"street", "city"}, def.PropertyNames())

	street, ok := def.Property("street")
	require.True(t, ok)
	assert.Equal(t, "string", street.Type)
}

func TestToSchema_NestedCollectionScenario(t *testing.T) {
	// Order{items list<Item>} registers both Order and Item.
	b := newTestBuilder(t,
		&descriptor.TypeDescriptor{
			Name:   "example.Order",
			Fields: []descriptor.Field{field(t, "items", "list<example.Item>")},
		},
		&descriptor.TypeDescriptor{
			Name:   "example.Item",
			Fields: []descriptor.Field{field(t, "sku", "string")},
		},
	)

	ref := b.ToSchema(mustType(t, "example.Order"))
	assert.Equal(t, "Order", ref.RefName())

	defs := b.Registry().Definitions()
	require.Contains(t, defs, "Order")
	require.Contains(t, defs, "Item")

	items, ok := defs["Order"].Property("items")
	require.True(t, ok)
	assert.Equal(t, "array", items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, "Item", items.Items.RefName())
}

func TestToSchema_DedupIdempotence(t *testing.T) {
	b := newTestBuilder(t, &descriptor.TypeDescriptor{
		Name:   "example.Address",
		Fields: []descriptor.Field{field(t, "street", "string")},
	})

	first := b.ToSchema(mustType(t, "example.Address"))
	second := b.ToSchema(mustType(t, "example.Address"))

	assert.Equal(t, first.RefName(), second.RefName())
	assert.Equal(t, 1, b.Registry().Len())
}

func TestToSchema_IterableWithArgument(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(mustType(t, "list<string>"))
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, "string", s.Items.Type)
}

func TestToSchema_IterableWithoutArgument(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(mustType(t, "list"))
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, "object", s.Items.Type)
	assert.Equal(t, FormatUnknownIterableType, s.Items.Format)
}

func TestToSchema_NativeArray(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(mustType(t, "[]int"))
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, "integer", s.Items.Type)
}

func TestToSchema_MapValueSchema(t *testing.T) {
	b := newTestBuilder(t, &descriptor.TypeDescriptor{
		Name:   "example.Item",
		Fields: []descriptor.Field{field(t, "sku", "string")},
	})

	s := b.ToSchema(mustType(t, "map<string,example.Item>"))
	assert.Equal(t, "object", s.Type)
	require.NotNil(t, s.AdditionalProperties)
	assert.Equal(t, "Item", s.AdditionalProperties.RefName())

	// The key type never appears anywhere in the output.
	assert.Nil(t, s.Properties)
	assert.Nil(t, s.Items)
}

func TestToSchema_MapWithoutArguments(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(mustType(t, "map"))
	require.NotNil(t, s.AdditionalProperties)
	assert.Equal(t, FormatUnknownMapValueType, s.AdditionalProperties.Format)
}

func TestToSchema_MapWinsOverIterable(t *testing.T) {
	// A declared type assignable to both capabilities classifies as a map.
	b := newTestBuilder(t, &descriptor.TypeDescriptor{
		Name:       "example.MultiMap",
		Implements: []string{"map", "iterable"},
	})

	s := b.ToSchema(mustType(t, "example.MultiMap<string,string>"))
	require.NotNil(t, s.AdditionalProperties)
	assert.Equal(t, "string", s.AdditionalProperties.Type)
	assert.Nil(t, s.Items)
}

func TestGatherFields_InheritanceOrder(t *testing.T) {
	b := newTestBuilder(t,
		&descriptor.TypeDescriptor{
			Name:    "example.Base",
			Extends: "object",
			Fields: []descriptor.Field{
				field(t, "id", "uuid"),
				field(t, "createdAt", "datetime"),
			},
		},
		&descriptor.TypeDescriptor{
			Name:    "example.Customer",
			Extends: "example.Base",
			Fields: []descriptor.Field{
				field(t, "name", "string"),
				field(t, "email", "email"),
			},
		},
	)

	ref := b.ToSchema(mustType(t, "example.Customer"))
	def := b.Registry().Definitions()[ref.RefName()]
	require.NotNil(t, def)

	// Base-class fields precede derived-class fields, in declaration order.
	assert.Equal(t, []string{"id", "createdAt", "name", "email"}, def.PropertyNames())
}

func TestGatherFields_ExclusionsAtDepth(t *testing.T) {
	b := newTestBuilder(t,
		&descriptor.TypeDescriptor{
			Name: "example.Inner",
			Fields: []descriptor.Field{
				field(t, "visible", "string"),
				{Name: "secret", Type: mustType(t, "string"), Hidden: true},
			},
		},
		&descriptor.TypeDescriptor{
			Name: "example.Outer",
			Fields: []descriptor.Field{
				field(t, "inner", "example.Inner"),
				{Name: "counter", Type: mustType(t, "int"), Static: true},
				{Name: "cache", Type: mustType(t, "string"), Transient: true},
			},
		},
	)

	b.ToSchema(mustType(t, "example.Outer"))
	defs := b.Registry().Definitions()

	assert.Equal(t, []string{"inner"}, defs["Outer"].PropertyNames())
	assert.Equal(t, []string{"visible"}, defs["Inner"].PropertyNames())
}

func TestToSchema_SelfReferentialType(t *testing.T) {
	// Category references itself; derivation must terminate with a ref to
	// the in-progress definition.
	b := newTestBuilder(t, &descriptor.TypeDescriptor{
		Name: "example.Category",
		Fields: []descriptor.Field{
			field(t, "name", "string"),
			field(t, "parent", "example.Category"),
			field(t, "children", "list<example.Category>"),
		},
	})

	ref := b.ToSchema(mustType(t, "example.Category"))
	assert.Equal(t, "Category", ref.RefName())

	def := b.Registry().Definitions()["Category"]
	require.NotNil(t, def)
	assert.Equal(t, []string{"name", "parent", "children"}, def.PropertyNames())

	parent, _ := def.Property("parent")
	assert.Equal(t, "Category", parent.RefName())

	children, _ := def.Property("children")
	assert.Equal(t, "Category", children.Items.RefName())

	assert.Equal(t, 1, b.Registry().Len())
}

func TestToSchema_MutuallyReferentialTypes(t *testing.T) {
	b := newTestBuilder(t,
		&descriptor.TypeDescriptor{
			Name:   "example.Author",
			Fields: []descriptor.Field{field(t, "books", "list<example.Book>")},
		},
		&descriptor.TypeDescriptor{
			Name:   "example.Book",
			Fields: []descriptor.Field{field(t, "author", "example.Author")},
		},
	)

	b.ToSchema(mustType(t, "example.Author"))
	defs := b.Registry().Definitions()

	books, _ := defs["Author"].Property("books")
	assert.Equal(t, "Book", books.Items.RefName())

	author, _ := defs["Book"].Property("author")
	assert.Equal(t, "Author", author.RefName())
}

func TestToSchema_SimpleNameCollision(t *testing.T) {
	b := newTestBuilder(t,
		&descriptor.TypeDescriptor{
			Name:   "billing.Address",
			Fields: []descriptor.Field{field(t, "iban", "string")},
		},
		&descriptor.TypeDescriptor{
			Name:   "shipping.Address",
			Fields: []descriptor.Field{field(t, "street", "string")},
		},
	)

	first := b.ToSchema(mustType(t, "billing.Address"))
	second := b.ToSchema(mustType(t, "shipping.Address"))

	assert.Equal(t, "Address", first.RefName())
	assert.Equal(t, "Address2", second.RefName())
	assert.Equal(t, 2, b.Registry().Len())

	// Each keeps its own definition.
	defs := b.Registry().Definitions()
	assert.Equal(t, []string{"iban"}, defs["Address"].PropertyNames())
	assert.Equal(t, []string{"street"}, defs["Address2"].PropertyNames())
}

func TestToSchema_UnknownTypeDegradesToEmptyObject(t *testing.T) {
	b := newTestBuilder(t)

	ref := b.ToSchema(mustType(t, "example.Mystery"))
	require.True(t, ref.IsRef())

	def := b.Registry().Definitions()["Mystery"]
	require.NotNil(t, def)
	assert.Equal(t, 0, def.PropertyCount())
}

func TestToSchema_NilType(t *testing.T) {
	b := newTestBuilder(t)

	s := b.ToSchema(nil)
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)
}
