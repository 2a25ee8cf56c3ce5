package schema

// primitive is one entry of the known-types table.
type primitive struct {
	typ    string
	format string
}

// knownTypes maps native scalar type names to schema primitives. The
// lookup is exact-match and runs before any structural classification.
var knownTypes = map[string]primitive{
	"string": {"string", ""},

	"bool":    {"boolean", ""},
	"boolean": {"boolean", ""},

	"int":     {"integer", "int32"},
	"int32":   {"integer", "int32"},
	"integer": {"integer", "int32"},
	"int64":   {"integer", "int64"},
	"bigint":  {"integer", "int64"},

	"float":   {"number", "float"},
	"float32": {"number", "float"},
	"float64": {"number", "double"},
	"double":  {"number", "double"},
	"decimal": {"number", ""},
	"money":   {"number", ""},

	"bytes":     {"string", "byte"},
	"uuid":      {"string", "uuid"},
	"email":     {"string", "email"},
	"url":       {"string", "uri"},
	"uri":       {"string", "uri"},
	"date":      {"string", "date"},
	"datetime":  {"string", "date-time"},
	"timestamp": {"string", "date-time"},
}

// KnownSchema returns a fresh primitive schema for a native scalar type
// name, or nil when the name is not in the table.
func KnownSchema(name string) *Schema {
	p, ok := knownTypes[name]
	if !ok {
		return nil
	}
	return NewPrimitive(p.typ, p.format)
}
