package descriptor

import (
	"fmt"
	"strings"
)

// Built-in scalar names recognized as KindPrimitive. Everything else parses
// as a declared type; the schema builder's known-types table is the final
// word on what is primitive.
var primitiveNames = map[string]bool{
	"string": true, "bool": true, "boolean": true,
	"int": true, "int32": true, "int64": true, "integer": true, "bigint": true,
	"float": true, "float32": true, "float64": true, "double": true,
	"decimal": true, "money": true, "bytes": true,
	"uuid": true, "email": true, "url": true, "uri": true,
	"date": true, "datetime": true, "timestamp": true,
}

// ParseType parses a type expression into a Type reference.
//
// Grammar:
//
//	type     = "[]" type | name [ "<" type { "," type } ">" ]
//	name     = identifier { "." identifier }
//
// Examples: "string", "[]com.example.Item", "list<Item>", "map<string,Item>".
func ParseType(expr string) (*Type, error) {
	p := &typeParser{input: expr}
	t, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("invalid type expression %q: trailing input at offset %d", expr, p.pos)
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parse() (*Type, error) {
	p.skipSpaces()

	if strings.HasPrefix(p.input[p.pos:], "[]") {
		p.pos += 2
		elem, err := p.parse()
		if err != nil {
			return nil, err
		}
		return &Type{Name: "[]" + elem.Name, Kind: KindArray, Elem: elem}, nil
	}

	name := p.readName()
	if name == "" {
		return nil, fmt.Errorf("expected type name at offset %d", p.pos)
	}

	t := &Type{Name: name, Kind: KindDeclared}
	if primitiveNames[name] {
		t.Kind = KindPrimitive
	}

	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			t.Args = append(t.Args, arg)

			p.skipSpaces()
			if p.pos >= len(p.input) {
				return nil, fmt.Errorf("unterminated type argument list")
			}
			if p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.input[p.pos] == '>' {
				p.pos++
				break
			}
			return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
		}
	}

	return t, nil
}

func (p *typeParser) readName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
