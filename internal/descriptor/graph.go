package descriptor

import "strings"

// Capability names a declared type can implement, directly or through its
// superclass chain.
const (
	capMap      = "map"
	capIterable = "iterable"
)

// Built-in container type names carrying an implicit capability.
var builtinMapLike = map[string]bool{
	"map":  true,
	"dict": true,
}

var builtinIterableLike = map[string]bool{
	"list":       true,
	"set":        true,
	"collection": true,
	"iterable":   true,
}

// Universal root type names. Their fields (there are none) are never
// gathered, and the superclass walk stops when it reaches them.
var rootTypeNames = map[string]bool{
	"object": true,
	"any":    true,
}

// Graph is the resolved type graph for one manifest: every declared type
// indexed by fully-qualified name. It is the introspection facility the
// schema builder queries for declarations and capabilities.
type Graph struct {
	types map[string]*TypeDescriptor
	order []string
}

// NewGraph builds a graph from declarations. Later declarations under the
// same name replace earlier ones.
func NewGraph(descs []*TypeDescriptor) *Graph {
	g := &Graph{types: make(map[string]*TypeDescriptor, len(descs))}
	for _, d := range descs {
		if _, ok := g.types[d.Name]; !ok {
			g.order = append(g.order, d.Name)
		}
		g.types[d.Name] = d
	}
	return g
}

// Lookup resolves a fully-qualified name to its declaration.
func (g *Graph) Lookup(name string) (*TypeDescriptor, bool) {
	d, ok := g.types[name]
	return d, ok
}

// TypeNames returns all declared type names in declaration order.
func (g *Graph) TypeNames() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// IsRoot reports whether a name is the universal root type.
func (g *Graph) IsRoot(name string) bool {
	return rootTypeNames[strings.ToLower(name)]
}

// IsMapLike reports whether a type reference is assignable to the map
// capability. Built-in container names match directly; declared types are
// checked through their implements lists up the superclass chain.
func (g *Graph) IsMapLike(t *Type) bool {
	if t == nil || t.Kind == KindArray {
		return false
	}
	if builtinMapLike[strings.ToLower(t.SimpleName())] {
		return true
	}
	return g.implements(t.Name, capMap)
}

// IsIterableLike reports whether a type reference is assignable to the
// iterable capability.
func (g *Graph) IsIterableLike(t *Type) bool {
	if t == nil || t.Kind == KindArray {
		return false
	}
	if builtinIterableLike[strings.ToLower(t.SimpleName())] {
		return true
	}
	return g.implements(t.Name, capIterable)
}

// implements walks the superclass chain looking for a capability. A seen
// set guards against malformed manifests with inheritance cycles.
func (g *Graph) implements(name, capability string) bool {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		seen[name] = true
		d, ok := g.types[name]
		if !ok {
			return false
		}
		for _, c := range d.Implements {
			if strings.EqualFold(c, capability) {
				return true
			}
		}
		name = d.Extends
	}
	return false
}
