// Package descriptor models the type graph consumed by schema derivation.
// A manifest file declares named types (fields, inheritance, capabilities)
// and the API operations that reference them; the Graph resolves type
// references and answers the structural queries the schema builder needs.
package descriptor

import "strings"

// Kind classifies a type reference.
type Kind int

const (
	// KindDeclared is a named type, possibly carrying generic arguments.
	KindDeclared Kind = iota

	// KindArray is a native array of one element type.
	KindArray

	// KindPrimitive is a built-in scalar type.
	KindPrimitive
)

// Type is a type reference at a use site: a field type, a generic
// argument, or an operation's request/response type. Declared types carry
// their generic arguments; arrays carry their element type.
type Type struct {
	// Name is the fully-qualified type name, e.g. "com.example.Order".
	Name string

	// Kind classifies the reference.
	Kind Kind

	// Args are the generic arguments at the use site, in order.
	Args []*Type

	// Elem is the element type for KindArray.
	Elem *Type
}

// SimpleName returns the unqualified type name.
func (t *Type) SimpleName() string {
	if pos := strings.LastIndex(t.Name, "."); pos > -1 {
		return t.Name[pos+1:]
	}
	return t.Name
}

// String renders the reference back to its expression form.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	if t.Kind == KindArray {
		return "[]" + t.Elem.String()
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	return t.Name + "<" + strings.Join(args, ",") + ">"
}

// TypeDescriptor is the declaration of a named type: its superclass,
// capabilities and declared fields, in declaration order.
type TypeDescriptor struct {
	// Name is the fully-qualified type name.
	Name string

	// Extends names the superclass, or is empty for none.
	Extends string

	// Implements lists capability names ("iterable", "map").
	Implements []string

	// Doc is the extracted documentation comment, if any.
	Doc string

	// Fields are the declared fields in declaration order.
	Fields []Field
}

// SimpleName returns the unqualified type name.
func (d *TypeDescriptor) SimpleName() string {
	if pos := strings.LastIndex(d.Name, "."); pos > -1 {
		return d.Name[pos+1:]
	}
	return d.Name
}

// Field is a declared data member of a type.
type Field struct {
	// Name is the field name as it appears in schemas.
	Name string

	// Type is the resolved field type reference.
	Type *Type

	// Static marks class-level fields, which never appear in schemas.
	Static bool

	// Transient marks fields excluded from serialization.
	Transient bool

	// Tags are the markers attached to the field in the manifest.
	Tags []string

	// Hidden is derived from Tags when the manifest is loaded.
	Hidden bool
}

// Ignore reports whether the field is excluded from schema derivation.
func (f Field) Ignore() bool {
	return f.Static || f.Transient || f.Hidden
}

// hiddenTag reports whether a tag marks its field as excluded from
// documentation. Tags may be qualified; only the simple name is compared.
func hiddenTag(tag string) bool {
	if pos := strings.LastIndex(tag, "."); pos > -1 {
		tag = tag[pos+1:]
	}
	return tag == "Hidden" || tag == "JsonIgnore"
}

// deriveHidden folds the documentation-exclusion tags into one boolean.
// This happens once at the descriptor boundary so the schema builder never
// does string matching on tags.
func deriveHidden(tags []string) bool {
	for _, tag := range tags {
		if hiddenTag(tag) {
			return true
		}
	}
	return false
}
