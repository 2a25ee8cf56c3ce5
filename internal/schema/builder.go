package schema

import (
	"go.uber.org/zap"

	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
)

// Builder derives schemas from type references. One Builder holds the
// registry for one generation run; it is not safe for concurrent use and
// is not meant to be shared across runs.
type Builder struct {
	graph    *descriptor.Graph
	registry *Registry
	log      *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the builder's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// NewBuilder creates a builder over a resolved type graph.
func NewBuilder(graph *descriptor.Graph, opts ...Option) *Builder {
	b := &Builder{
		graph:    graph,
		registry: NewRegistry(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry exposes the definitions accumulated so far.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// ToSchema derives the schema for a type reference.
//
// Classification order is significant: the primitive table is consulted
// first and short-circuits, map wins over iterable (map-like types are
// commonly also iterable-like), native arrays come before the iterable
// capability, and everything else degrades to a composite object.
func (b *Builder) ToSchema(t *descriptor.Type) *Schema {
	if t == nil {
		return NewObject()
	}
	if s := KnownSchema(t.Name); s != nil {
		return s
	}
	if b.graph.IsMapLike(t) {
		return b.buildMapSchema(t)
	}
	if t.Kind == descriptor.KindArray {
		return b.buildArraySchema(t)
	}
	if b.graph.IsIterableLike(t) {
		return b.buildIterableSchema(t)
	}
	return b.toObjectSchema(t)
}

// toObjectSchema derives a composite object definition and returns a
// reference to it. The registry entry is reserved before field recursion,
// so self-referential types resolve to the in-progress reference.
func (b *Builder) toObjectSchema(t *descriptor.Type) *Schema {
	fqn := t.Name
	if ref, ok := b.registry.Lookup(fqn); ok {
		return ref
	}

	name, ref := b.registry.Reserve(fqn, t.SimpleName())

	def := NewObject()
	for _, field := range b.gatherFields(fqn) {
		def.SetProperty(field.Name, b.ToSchema(field.Type))
	}
	b.registry.Complete(fqn, def)

	b.log.Debug("registered object schema",
		zap.String("name", name),
		zap.String("type", fqn),
		zap.Int("properties", def.PropertyCount()))
	return ref
}

// gatherFields collects a type's data members across its inheritance
// chain: superclass fields first, declaration order within each level,
// static, transient and hidden fields excluded.
func (b *Builder) gatherFields(typeName string) []descriptor.Field {
	var fields []descriptor.Field
	b.collectFields(&fields, typeName, make(map[string]bool))
	return fields
}

func (b *Builder) collectFields(fields *[]descriptor.Field, typeName string, seen map[string]bool) {
	if typeName == "" || seen[typeName] || b.graph.IsRoot(typeName) {
		return
	}
	seen[typeName] = true

	decl, ok := b.graph.Lookup(typeName)
	if !ok {
		return
	}

	b.collectFields(fields, decl.Extends, seen)
	for _, field := range decl.Fields {
		if !field.Ignore() {
			*fields = append(*fields, field)
		}
	}
}

// buildIterableSchema wraps the single type argument's schema in an array
// schema. Zero or more than one argument yields the placeholder item.
func (b *Builder) buildIterableSchema(t *descriptor.Type) *Schema {
	item := newPlaceholder(FormatUnknownIterableType)
	if t.Kind == descriptor.KindDeclared && len(t.Args) == 1 {
		item = b.ToSchema(t.Args[0])
	}
	return NewArray(item)
}

// buildArraySchema derives the element type's schema. Arrays always carry
// exactly one component type.
func (b *Builder) buildArraySchema(t *descriptor.Type) *Schema {
	return NewArray(b.ToSchema(t.Elem))
}

// buildMapSchema derives the value schema from the second type argument;
// the key type is implicitly string and never modeled. Anything other
// than exactly two arguments yields the placeholder value.
func (b *Builder) buildMapSchema(t *descriptor.Type) *Schema {
	value := newPlaceholder(FormatUnknownMapValueType)
	if t.Kind == descriptor.KindDeclared && len(t.Args) == 2 {
		value = b.ToSchema(t.Args[1])
	}
	return NewMap(value)
}
