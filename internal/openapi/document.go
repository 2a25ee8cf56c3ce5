package openapi

import (
	"fmt"
	"strings"

	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
)

// BuildDocument assembles a full OpenAPI document from a manifest's
// operations, deriving every referenced type through the wrapped schema
// builder and collecting the discovered definitions into components.
func (d *DocBuilder) BuildDocument(m *descriptor.Manifest, servers []Server) (*Document, error) {
	doc := &Document{
		OpenAPI: Version,
		Info: Info{
			Title:       m.Project.Name,
			Version:     m.Project.Version,
			Description: m.Project.Description,
		},
		Servers: servers,
		Paths:   make(map[string]PathItem),
	}

	for _, decl := range m.Operations {
		op, err := d.buildOperation(decl)
		if err != nil {
			return nil, err
		}

		item, ok := doc.Paths[decl.Path]
		if !ok {
			item = PathItem{}
			doc.Paths[decl.Path] = item
		}
		item[strings.ToLower(decl.Method)] = op
	}

	doc.Components = &Components{
		Schemas: d.schemas.Registry().Definitions(),
	}
	return doc, nil
}

func (d *DocBuilder) buildOperation(decl *descriptor.OperationDecl) (*Operation, error) {
	op := &Operation{
		OperationID: decl.ID,
		Summary:     decl.Summary,
		Description: decl.Description,
		Tags:        decl.Tags,
		Responses:   make(map[string]*Response),
	}
	if op.OperationID == "" {
		op.OperationID = operationID(decl.Method, decl.Path)
	}

	if decl.Request != nil {
		t, err := descriptor.ParseType(decl.Request.Type)
		if err != nil {
			return nil, fmt.Errorf("operation %s %s: request: %w", decl.Method, decl.Path, err)
		}
		d.AddRequestBody(op, d.schemas.ToSchema(t), decl.Request.Form, decl.Request.Description)
	}

	for _, param := range decl.FormParams {
		t, err := descriptor.ParseType(param.Type)
		if err != nil {
			return nil, fmt.Errorf("operation %s %s: form param %s: %w", decl.Method, decl.Path, param.Name, err)
		}
		d.AddFormParam(op, param.Name, d.schemas.ToSchema(t))
	}

	for status, resp := range decl.Responses {
		response := &Response{Description: resp.Description}
		if resp.Type != "" {
			t, err := descriptor.ParseType(resp.Type)
			if err != nil {
				return nil, fmt.Errorf("operation %s %s: response %s: %w", decl.Method, decl.Path, status, err)
			}
			mediaType := resp.MediaType
			if mediaType == "" {
				mediaType = MediaJSON
			}
			response.Content = d.CreateContent(t, mediaType)
		}
		op.Responses[status] = response
	}

	return op, nil
}

// operationID synthesizes a stable operation id from the method and path,
// e.g. "get_orders_id" for GET /orders/{id}.
func operationID(method, path string) string {
	segment := func(r rune) bool {
		return r == '/' || r == '{' || r == '}'
	}
	parts := strings.FieldsFunc(path, segment)
	return strings.ToLower(method + "_" + strings.Join(parts, "_"))
}
