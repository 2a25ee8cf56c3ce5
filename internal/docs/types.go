// Package docs orchestrates documentation generation from a type manifest.
// It derives the schema document once and renders it in the configured
// output formats.
package docs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
	"github.com/schemadoc-dev/schemadoc/internal/openapi"
	"github.com/schemadoc-dev/schemadoc/internal/schema"
)

// Config holds configuration for documentation generation.
type Config struct {
	// OutputDir is the base directory for generated documentation.
	OutputDir string

	// Formats specifies which formats to generate.
	Formats []Format

	// BaseURL is the primary server URL listed in the document.
	BaseURL string

	// ServerURLs are additional server entries.
	ServerURLs []ServerURL

	// Logger receives debug output. Nil means discard.
	Logger *zap.Logger
}

// Format represents a documentation output format.
type Format string

const (
	// FormatOpenAPI generates an OpenAPI 3.0 specification as JSON.
	FormatOpenAPI Format = "openapi"

	// FormatOpenAPIYAML generates the same specification as YAML.
	FormatOpenAPIYAML Format = "openapi-yaml"

	// FormatMarkdown generates Markdown documentation.
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatOpenAPI, FormatOpenAPIYAML, FormatMarkdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown documentation format %q", s)
}

// ServerURL represents an API server entry in the generated document.
type ServerURL struct {
	URL         string
	Description string
}

// Generator orchestrates documentation generation across formats.
type Generator struct {
	config *Config
	log    *zap.Logger
}

// NewGenerator creates a documentation generator.
func NewGenerator(config *Config) *Generator {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{config: config, log: log}
}

// Generate derives the schema document from the manifest and renders each
// configured format.
func (g *Generator) Generate(m *descriptor.Manifest) error {
	doc, err := g.BuildDocument(m)
	if err != nil {
		return err
	}

	for _, format := range g.config.Formats {
		switch format {
		case FormatOpenAPI:
			if err := NewOpenAPIGenerator(g.config).Generate(doc, encodingJSON); err != nil {
				return err
			}
		case FormatOpenAPIYAML:
			if err := NewOpenAPIGenerator(g.config).Generate(doc, encodingYAML); err != nil {
				return err
			}
		case FormatMarkdown:
			if err := NewMarkdownGenerator(g.config).Generate(doc); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown documentation format %q", format)
		}
	}

	return nil
}

// BuildDocument derives the full schema document for a manifest without
// writing any output.
func (g *Generator) BuildDocument(m *descriptor.Manifest) (*openapi.Document, error) {
	graph, err := m.Graph()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve type graph: %w", err)
	}

	builder := openapi.NewDocBuilder(schema.NewBuilder(graph, schema.WithLogger(g.log)))
	doc, err := builder.BuildDocument(m, g.servers())
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}

	g.log.Debug("document assembled",
		zap.Int("paths", len(doc.Paths)),
		zap.Int("schemas", len(doc.Components.Schemas)))
	return doc, nil
}

// servers builds the document's server list from the config, falling back
// to a development server entry when nothing is configured.
func (g *Generator) servers() []openapi.Server {
	servers := make([]openapi.Server, 0)

	if g.config.BaseURL != "" {
		servers = append(servers, openapi.Server{
			URL:         g.config.BaseURL,
			Description: "Production server",
		})
	}

	for _, s := range g.config.ServerURLs {
		servers = append(servers, openapi.Server{URL: s.URL, Description: s.Description})
	}

	if len(servers) == 0 {
		servers = append(servers, openapi.Server{
			URL:         "http://localhost:3000",
			Description: "Development server",
		})
	}

	return servers
}
