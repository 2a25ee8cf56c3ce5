package schema

import (
	"sort"
	"strconv"
)

// entryState tracks whether a definition is still being derived. A
// "building" entry exists from the moment a name is reserved, so cyclic
// type references resolve to the in-progress reference instead of
// re-entering derivation.
type entryState int

const (
	stateBuilding entryState = iota
	stateComplete
)

type entry struct {
	name  string // emitted definition name, disambiguated when needed
	def   *Schema
	state entryState
}

// Registry holds the named object definitions discovered during one
// generation run. Entries are keyed internally by fully-qualified type
// name; the emitted name is the simple name, with a numeric suffix when
// two distinct types share it. A definition is inserted at most once per
// registry lifetime.
type Registry struct {
	entries map[string]*entry // fully-qualified name -> entry
	names   map[string]string // emitted name -> fully-qualified name
}

// NewRegistry returns an empty registry for one generation run.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		names:   make(map[string]string),
	}
}

// Lookup returns a reference to an existing entry, building or complete.
func (r *Registry) Lookup(fqn string) (*Schema, bool) {
	e, ok := r.entries[fqn]
	if !ok {
		return nil, false
	}
	return NewRef(e.name), true
}

// Reserve claims a definition name for a type before its fields are
// derived and returns the emitted name with a reference to it. Simple-name
// collisions across namespaces are disambiguated with a numeric suffix in
// discovery order.
func (r *Registry) Reserve(fqn, simpleName string) (string, *Schema) {
	if e, ok := r.entries[fqn]; ok {
		return e.name, NewRef(e.name)
	}

	name := simpleName
	for i := 2; ; i++ {
		if _, taken := r.names[name]; !taken {
			break
		}
		name = simpleName + strconv.Itoa(i)
	}

	r.entries[fqn] = &entry{name: name, state: stateBuilding}
	r.names[name] = fqn
	return name, NewRef(name)
}

// Complete stores the finished definition for a previously reserved type.
// Completing an unreserved or already complete entry is ignored.
func (r *Registry) Complete(fqn string, def *Schema) {
	e, ok := r.entries[fqn]
	if !ok || e.state == stateComplete {
		return
	}
	e.def = def
	e.state = stateComplete
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns the emitted definition names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the emitted name to definition mapping. Entries
// still being derived appear as empty objects; a finished run has none.
func (r *Registry) Definitions() map[string]*Schema {
	defs := make(map[string]*Schema, len(r.entries))
	for _, e := range r.entries {
		def := e.def
		if def == nil {
			def = NewObject()
		}
		defs[e.name] = def
	}
	return defs
}
