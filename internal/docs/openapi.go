package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/schemadoc-dev/schemadoc/internal/openapi"
)

type encoding int

const (
	encodingJSON encoding = iota
	encodingYAML
)

// OpenAPIGenerator writes the assembled document as an OpenAPI
// specification file.
type OpenAPIGenerator struct {
	config *Config
}

// NewOpenAPIGenerator creates a new OpenAPI generator.
func NewOpenAPIGenerator(config *Config) *OpenAPIGenerator {
	return &OpenAPIGenerator{config: config}
}

// Generate writes the document to openapi.json or openapi.yaml in the
// output directory.
func (g *OpenAPIGenerator) Generate(doc *openapi.Document, enc encoding) error {
	// Validate the output directory BEFORE making it absolute
	if containsPathTraversal(g.config.OutputDir) {
		return fmt.Errorf("invalid output directory: path traversal detected")
	}

	outputDir := filepath.Clean(g.config.OutputDir)
	if !filepath.IsAbs(outputDir) {
		cwd, _ := os.Getwd()
		outputDir = filepath.Join(cwd, outputDir)
	}

	filename := "openapi.json"
	if enc == encodingYAML {
		filename = "openapi.yaml"
	}
	outputPath := filepath.Join(outputDir, filename)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := encodeDocument(doc, enc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write OpenAPI spec: %w", err)
	}

	return nil
}

// encodeDocument marshals the document. YAML output round-trips through
// the JSON encoding so ordered object properties keep their order.
func encodeDocument(doc *openapi.Document, enc encoding) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec: %w", err)
	}
	if enc == encodingJSON {
		return data, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert OpenAPI spec to YAML: %w", err)
	}
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec as YAML: %w", err)
	}
	return out, nil
}
