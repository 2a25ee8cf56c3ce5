// Package schema derives documentation schemas from a resolved type graph.
// It is the core of the generator: a recursive type-to-schema derivation
// with a deduplicating registry, so each distinct object type contributes
// exactly one named definition, referenced wherever it recurs.
package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Placeholder formats emitted when a container's generic type argument is
// missing, instead of failing the derivation.
const (
	FormatUnknownIterableType = "unknownIterableType"
	FormatUnknownMapValueType = "unknownMapValueType"
)

// RefPrefix is the document location of named object definitions.
const RefPrefix = "#/components/schemas/"

// Schema is one node of a derived schema tree: a primitive, an array, a
// map, an object definition, or a reference to a registered definition.
// Object properties keep declaration order, so documents render
// deterministically.
type Schema struct {
	Ref                  string                                   `json:"$ref,omitempty"`
	Type                 string                                   `json:"type,omitempty"`
	Format               string                                   `json:"format,omitempty"`
	Items                *Schema                                  `json:"items,omitempty"`
	AdditionalProperties *Schema                                  `json:"additionalProperties,omitempty"`
	Properties           *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitempty"`
}

// NewPrimitive returns a terminal schema with a type and optional format.
func NewPrimitive(typ, format string) *Schema {
	return &Schema{Type: typ, Format: format}
}

// NewArray wraps an item schema in an array schema.
func NewArray(items *Schema) *Schema {
	return &Schema{Type: "array", Items: items}
}

// NewMap wraps a value schema in a map schema. Keys are implicitly
// string-typed and are not modeled.
func NewMap(values *Schema) *Schema {
	return &Schema{Type: "object", AdditionalProperties: values}
}

// NewObject returns an empty object definition with ordered properties.
func NewObject() *Schema {
	return &Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *Schema](),
	}
}

// NewRef returns a reference to a named definition held in the registry.
func NewRef(name string) *Schema {
	return &Schema{Ref: RefPrefix + name}
}

// newPlaceholder returns the degraded object schema used when an item or
// value type cannot be determined.
func newPlaceholder(format string) *Schema {
	return &Schema{Type: "object", Format: format}
}

// SetProperty adds or replaces a named property, preserving insertion
// order for new names.
func (s *Schema) SetProperty(name string, prop *Schema) {
	if s.Properties == nil {
		s.Properties = orderedmap.New[string, *Schema]()
	}
	s.Properties.Set(name, prop)
}

// Property returns a named property.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s.Properties == nil {
		return nil, false
	}
	return s.Properties.Get(name)
}

// PropertyNames returns property names in insertion order.
func (s *Schema) PropertyNames() []string {
	if s.Properties == nil {
		return nil
	}
	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// PropertyCount returns the number of properties.
func (s *Schema) PropertyCount() int {
	if s.Properties == nil {
		return 0
	}
	return s.Properties.Len()
}

// IsRef reports whether the node is a reference to a named definition.
func (s *Schema) IsRef() bool {
	return s.Ref != ""
}

// RefName returns the definition name a reference points at, or "".
func (s *Schema) RefName() string {
	if len(s.Ref) > len(RefPrefix) && s.Ref[:len(RefPrefix)] == RefPrefix {
		return s.Ref[len(RefPrefix):]
	}
	return ""
}
