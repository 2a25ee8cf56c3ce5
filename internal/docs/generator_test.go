package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
)

func testManifest() *descriptor.Manifest {
	return &descriptor.Manifest{
		Project: descriptor.ProjectInfo{
			Name:        "Orders API",
			Version:     "1.0.0",
			Description: "Order management",
		},
		Types: []*descriptor.TypeDecl{
			{
				Name: "example.Order",
				Fields: []descriptor.FieldDecl{
					{Name: "id", Type: "uuid"},
					{Name: "items", Type: "list<example.Item>"},
					{Name: "attributes", Type: "map<string,string>"},
				},
			},
			{
				Name: "example.Item",
				Fields: []descriptor.FieldDecl{
					{Name: "sku", Type: "string"},
					{Name: "quantity", Type: "int"},
				},
			},
		},
		Operations: []*descriptor.OperationDecl{
			{
				Method:  "POST",
				Path:    "/orders",
				Summary: "Create an order",
				Request: &descriptor.RequestDecl{Type: "example.Order"},
				Responses: map[string]*descriptor.ResponseDecl{
					"201": {Type: "example.Order", Description: "Created order"},
				},
			},
		},
	}
}

func TestGenerateOpenAPI(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewGenerator(&Config{
		OutputDir: outputDir,
		Formats:   []Format{FormatOpenAPI},
	})

	if err := gen.Generate(testManifest()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "openapi.json"))
	if err != nil {
		t.Fatalf("Failed to read openapi.json: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}

	if doc["openapi"] != "3.0.3" {
		t.Errorf("Expected openapi 3.0.3, got %v", doc["openapi"])
	}

	info := doc["info"].(map[string]interface{})
	if info["title"] != "Orders API" {
		t.Errorf("Expected title 'Orders API', got %v", info["title"])
	}

	paths := doc["paths"].(map[string]interface{})
	if _, ok := paths["/orders"]; !ok {
		t.Error("Expected /orders path in document")
	}

	components := doc["components"].(map[string]interface{})
	schemas := components["schemas"].(map[string]interface{})
	for _, name := range []string{"Order", "Item"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("Expected schema %s in components", name)
		}
	}

	// Ordered properties survive the JSON encoding.
	order := schemas["Order"].(map[string]interface{})
	props := order["properties"].(map[string]interface{})
	if len(props) != 3 {
		t.Errorf("Expected 3 Order properties, got %d", len(props))
	}
	text := string(data)
	if strings.Index(text, `"id"`) > strings.Index(text, `"items"`) {
		t.Error("Expected id property to be emitted before items")
	}
}

func TestGenerateOpenAPIYAML(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewGenerator(&Config{
		OutputDir: outputDir,
		Formats:   []Format{FormatOpenAPIYAML},
	})

	if err := gen.Generate(testManifest()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "openapi.yaml"))
	if err != nil {
		t.Fatalf("Failed to read openapi.yaml: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "openapi: 3.0.3") {
		t.Error("Expected openapi version in YAML output")
	}
	if !strings.Contains(text, "Orders API") {
		t.Error("Expected project title in YAML output")
	}
}

func TestGenerateMarkdown(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewGenerator(&Config{
		OutputDir: outputDir,
		Formats:   []Format{FormatMarkdown},
		BaseURL:   "https://api.example.com",
	})

	if err := gen.Generate(testManifest()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	readme, err := os.ReadFile(filepath.Join(outputDir, "markdown", "README.md"))
	if err != nil {
		t.Fatalf("Failed to read README.md: %v", err)
	}
	text := string(readme)
	if !strings.Contains(text, "# Orders API API Documentation") {
		t.Error("Expected title in README.md")
	}
	if !strings.Contains(text, "https://api.example.com") {
		t.Error("Expected server URL in README.md")
	}
	if !strings.Contains(text, "POST /orders") {
		t.Error("Expected endpoint in README.md")
	}

	schemas, err := os.ReadFile(filepath.Join(outputDir, "markdown", "schemas.md"))
	if err != nil {
		t.Fatalf("Failed to read schemas.md: %v", err)
	}
	text = string(schemas)
	if !strings.Contains(text, "## Order") {
		t.Error("Expected Order schema section")
	}
	if !strings.Contains(text, "| `sku` |") {
		t.Error("Expected sku property row")
	}
	if !strings.Contains(text, "array of [Item](schemas.md#item)") {
		t.Error("Expected items property to link to Item")
	}
	if !strings.Contains(text, "map of string to `string`") {
		t.Error("Expected attributes property to render as a map")
	}
}

func TestGenerateMultipleFormats(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewGenerator(&Config{
		OutputDir: outputDir,
		Formats:   []Format{FormatOpenAPI, FormatOpenAPIYAML, FormatMarkdown},
	})

	if err := gen.Generate(testManifest()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, path := range []string{
		"openapi.json",
		"openapi.yaml",
		filepath.Join("markdown", "README.md"),
		filepath.Join("markdown", "schemas.md"),
	} {
		if _, err := os.Stat(filepath.Join(outputDir, path)); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	gen := NewGenerator(&Config{
		OutputDir: t.TempDir(),
		Formats:   []Format{"html"},
	})

	if err := gen.Generate(testManifest()); err == nil {
		t.Fatal("Expected error for unknown format")
	}
}

func TestGeneratePathTraversalRejected(t *testing.T) {
	for _, format := range []Format{FormatOpenAPI, FormatMarkdown} {
		gen := NewGenerator(&Config{
			OutputDir: "../../../etc",
			Formats:   []Format{format},
		})
		if err := gen.Generate(testManifest()); err == nil {
			t.Errorf("Expected path traversal error for format %s", format)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"openapi", "openapi-yaml", "markdown"} {
		format, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
		}
		if string(format) != name {
			t.Errorf("ParseFormat(%q) = %q", name, format)
		}
	}

	if _, err := ParseFormat("html"); err == nil {
		t.Error("Expected error for unknown format name")
	}
}

func TestServersFallback(t *testing.T) {
	gen := NewGenerator(&Config{OutputDir: t.TempDir()})

	servers := gen.servers()
	if len(servers) != 1 {
		t.Fatalf("Expected 1 default server, got %d", len(servers))
	}
	if servers[0].URL != "http://localhost:3000" {
		t.Errorf("Expected development server URL, got %s", servers[0].URL)
	}
}

func TestServersConfigured(t *testing.T) {
	gen := NewGenerator(&Config{
		OutputDir: t.TempDir(),
		BaseURL:   "https://api.example.com",
		ServerURLs: []ServerURL{
			{URL: "https://staging.example.com", Description: "Staging"},
		},
	})

	servers := gen.servers()
	if len(servers) != 2 {
		t.Fatalf("Expected 2 servers, got %d", len(servers))
	}
	if servers[0].URL != "https://api.example.com" || servers[0].Description != "Production server" {
		t.Errorf("Unexpected primary server: %+v", servers[0])
	}
	if servers[1].Description != "Staging" {
		t.Errorf("Unexpected secondary server: %+v", servers[1])
	}
}
