package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk declaration of a project's type graph and its
// documented operations. It supports JSON and YAML encodings.
type Manifest struct {
	Project    ProjectInfo      `json:"project" yaml:"project"`
	Types      []*TypeDecl      `json:"types" yaml:"types"`
	Operations []*OperationDecl `json:"operations,omitempty" yaml:"operations,omitempty"`
}

// ProjectInfo carries project-level metadata for the generated document.
type ProjectInfo struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TypeDecl is the raw declaration of a named type. Field types are type
// expressions, parsed during resolution.
type TypeDecl struct {
	Name       string      `json:"name" yaml:"name"`
	Extends    string      `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements []string    `json:"implements,omitempty" yaml:"implements,omitempty"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Fields     []FieldDecl `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldDecl is the raw declaration of a field.
type FieldDecl struct {
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"`
	Static    bool     `json:"static,omitempty" yaml:"static,omitempty"`
	Transient bool     `json:"transient,omitempty" yaml:"transient,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// OperationDecl declares one documented API operation.
type OperationDecl struct {
	Method      string                   `json:"method" yaml:"method"`
	Path        string                   `json:"path" yaml:"path"`
	ID          string                   `json:"id,omitempty" yaml:"id,omitempty"`
	Summary     string                   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string                 `json:"tags,omitempty" yaml:"tags,omitempty"`
	Request     *RequestDecl             `json:"request,omitempty" yaml:"request,omitempty"`
	FormParams  []FormParamDecl          `json:"formParams,omitempty" yaml:"formParams,omitempty"`
	Responses   map[string]*ResponseDecl `json:"responses,omitempty" yaml:"responses,omitempty"`
}

// RequestDecl declares an operation's request body.
type RequestDecl struct {
	Type        string `json:"type" yaml:"type"`
	Form        bool   `json:"form,omitempty" yaml:"form,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FormParamDecl declares one form-encoded parameter.
type FormParamDecl struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ResponseDecl declares one response, keyed by status code in the manifest.
type ResponseDecl struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	MediaType   string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// LoadManifest reads and decodes a manifest file. The encoding is chosen
// by file extension: .json uses JSON, everything else YAML.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse JSON manifest %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse YAML manifest %s: %w", path, err)
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, t := range m.Types {
		if t.Name == "" {
			return fmt.Errorf("type declaration with empty name")
		}
	}
	for _, op := range m.Operations {
		if op.Method == "" || op.Path == "" {
			return fmt.Errorf("operation %q %q: method and path are required", op.Method, op.Path)
		}
	}
	return nil
}

// Graph resolves the manifest's type declarations into a Graph, parsing
// every field's type expression and folding exclusion tags into the typed
// Hidden flag.
func (m *Manifest) Graph() (*Graph, error) {
	descs := make([]*TypeDescriptor, 0, len(m.Types))
	for _, decl := range m.Types {
		d := &TypeDescriptor{
			Name:       decl.Name,
			Extends:    decl.Extends,
			Implements: decl.Implements,
			Doc:        decl.Doc,
			Fields:     make([]Field, 0, len(decl.Fields)),
		}
		for _, f := range decl.Fields {
			ft, err := ParseType(f.Type)
			if err != nil {
				return nil, fmt.Errorf("type %s, field %s: %w", decl.Name, f.Name, err)
			}
			d.Fields = append(d.Fields, Field{
				Name:      f.Name,
				Type:      ft,
				Static:    f.Static,
				Transient: f.Transient,
				Tags:      f.Tags,
				Hidden:    deriveHidden(f.Tags),
			})
		}
		descs = append(descs, d)
	}
	return NewGraph(descs), nil
}
