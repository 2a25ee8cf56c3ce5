package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schemadoc-dev/schemadoc/internal/openapi"
	"github.com/schemadoc-dev/schemadoc/internal/schema"
)

// MarkdownGenerator renders the assembled document as Markdown files.
type MarkdownGenerator struct {
	config *Config
}

// NewMarkdownGenerator creates a new Markdown generator.
func NewMarkdownGenerator(config *Config) *MarkdownGenerator {
	return &MarkdownGenerator{config: config}
}

// Generate writes README.md (overview and endpoints) and schemas.md
// (named definitions) under <output>/markdown.
func (g *MarkdownGenerator) Generate(doc *openapi.Document) error {
	if containsPathTraversal(g.config.OutputDir) {
		return fmt.Errorf("invalid output directory: path traversal detected")
	}

	outputDir := filepath.Join(g.config.OutputDir, "markdown")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := g.generateIndex(doc, outputDir); err != nil {
		return err
	}
	return g.generateSchemas(doc, outputDir)
}

// generateIndex writes the overview and endpoint listing.
func (g *MarkdownGenerator) generateIndex(doc *openapi.Document, outputDir string) error {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("# %s API Documentation\n\n", doc.Info.Title))
	if doc.Info.Description != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", doc.Info.Description))
	}
	buf.WriteString(fmt.Sprintf("**Version:** v%s\n\n", doc.Info.Version))

	if len(doc.Servers) > 0 {
		buf.WriteString("## Servers\n\n")
		for _, server := range doc.Servers {
			if server.Description != "" {
				buf.WriteString(fmt.Sprintf("- `%s` — %s\n", server.URL, server.Description))
			} else {
				buf.WriteString(fmt.Sprintf("- `%s`\n", server.URL))
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Endpoints\n\n")
	paths := sortedKeys(doc.Paths)
	if len(paths) == 0 {
		buf.WriteString("No endpoints defined.\n\n")
	}
	for _, path := range paths {
		item := doc.Paths[path]
		for _, method := range sortedKeys(item) {
			g.writeEndpoint(&buf, strings.ToUpper(method), path, item[method])
		}
	}

	buf.WriteString("See [schemas.md](schemas.md) for all named schema definitions.\n")

	outputPath := filepath.Join(outputDir, "README.md")
	return os.WriteFile(outputPath, []byte(buf.String()), 0644)
}

// writeEndpoint renders one operation.
func (g *MarkdownGenerator) writeEndpoint(buf *strings.Builder, method, path string, op *openapi.Operation) {
	title := op.Summary
	if title == "" {
		title = fmt.Sprintf("%s %s", method, path)
	}
	buf.WriteString(fmt.Sprintf("### %s\n\n", title))

	buf.WriteString("```http\n")
	buf.WriteString(fmt.Sprintf("%s %s\n", method, path))
	buf.WriteString("```\n\n")

	if op.Description != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", op.Description))
	}

	if op.RequestBody != nil {
		buf.WriteString("**Request Body:**\n\n")
		for _, mime := range sortedKeys(op.RequestBody.Content) {
			mt := op.RequestBody.Content[mime]
			buf.WriteString(fmt.Sprintf("- `%s`: %s\n", mime, schemaLabel(mt.Schema)))
		}
		buf.WriteString("\n")
	}

	if len(op.Responses) > 0 {
		buf.WriteString("**Responses:**\n\n")
		for _, status := range sortedKeys(op.Responses) {
			resp := op.Responses[status]
			line := fmt.Sprintf("- **%s** %s", status, resp.Description)
			for _, mime := range sortedKeys(resp.Content) {
				line += fmt.Sprintf(" (`%s`: %s)", mime, schemaLabel(resp.Content[mime].Schema))
			}
			buf.WriteString(line + "\n")
		}
		buf.WriteString("\n")
	}
}

// generateSchemas writes the named definitions.
func (g *MarkdownGenerator) generateSchemas(doc *openapi.Document, outputDir string) error {
	var buf strings.Builder

	buf.WriteString("# Schemas\n\n")
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		buf.WriteString("No named schemas.\n")
	} else {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			def := doc.Components.Schemas[name]
			buf.WriteString(fmt.Sprintf("## %s\n\n", name))

			if def.PropertyCount() == 0 {
				buf.WriteString("No properties.\n\n")
				continue
			}
			buf.WriteString("| Property | Type |\n")
			buf.WriteString("|----------|------|\n")
			for _, prop := range def.PropertyNames() {
				ps, _ := def.Property(prop)
				buf.WriteString(fmt.Sprintf("| `%s` | %s |\n", prop, schemaLabel(ps)))
			}
			buf.WriteString("\n")
		}
	}

	outputPath := filepath.Join(outputDir, "schemas.md")
	return os.WriteFile(outputPath, []byte(buf.String()), 0644)
}

// schemaLabel renders a short human-readable label for a schema node.
func schemaLabel(s *schema.Schema) string {
	switch {
	case s == nil:
		return "`object`"
	case s.IsRef():
		name := s.RefName()
		return fmt.Sprintf("[%s](schemas.md#%s)", name, strings.ToLower(name))
	case s.Type == "array":
		return fmt.Sprintf("array of %s", schemaLabel(s.Items))
	case s.AdditionalProperties != nil:
		return fmt.Sprintf("map of string to %s", schemaLabel(s.AdditionalProperties))
	case s.Format != "":
		return fmt.Sprintf("`%s (%s)`", s.Type, s.Format)
	default:
		return fmt.Sprintf("`%s`", s.Type)
	}
}

// sortedKeys returns a map's keys in sorted order.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
