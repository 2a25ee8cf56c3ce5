package openapi

import (
	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
	"github.com/schemadoc-dev/schemadoc/internal/schema"
)

// DocBuilder assembles document fragments around one schema builder. Like
// the builder it wraps, it belongs to a single generation run.
type DocBuilder struct {
	schemas *schema.Builder
}

// NewDocBuilder wraps a schema builder.
func NewDocBuilder(schemas *schema.Builder) *DocBuilder {
	return &DocBuilder{schemas: schemas}
}

// Schemas returns the wrapped schema builder.
func (d *DocBuilder) Schemas() *schema.Builder {
	return d.schemas
}

// CreateContent derives one schema and wraps it as a single media-type
// entry.
func (d *DocBuilder) CreateContent(t *descriptor.Type, mediaType string) Content {
	return Content{
		mediaType: &MediaType{Schema: d.schemas.ToSchema(t)},
	}
}

// AddRequestBody attaches a schema to an operation's request body under
// the form-encoded or JSON media type. The body container is created on
// first use and reused afterwards; the description overwrites any prior
// one.
func (d *DocBuilder) AddRequestBody(op *Operation, s *schema.Schema, asForm bool, description string) {
	body := requestBody(op)
	body.Description = description

	mime := MediaJSON
	if asForm {
		mime = MediaForm
	}
	body.Content[mime] = &MediaType{Schema: s}
}

// AddFormParam adds one named property to the operation's form body
// schema. All calls for the same operation mutate the same object schema,
// so repeated parameters accumulate in the order they are added.
func (d *DocBuilder) AddFormParam(op *Operation, name string, s *schema.Schema) {
	body := requestBody(op)
	formSchema := requestFormParamSchema(body)
	formSchema.SetProperty(name, s)
}

// requestBody returns the operation's request body, creating it on first
// use.
func requestBody(op *Operation) *RequestBody {
	if op.RequestBody == nil {
		op.RequestBody = &RequestBody{
			Required: true,
			Content:  Content{},
		}
	}
	return op.RequestBody
}

// requestFormParamSchema returns the object schema backing the form media
// type, creating both on first use. The schema is stored by reference so
// later lookups see earlier additions.
func requestFormParamSchema(body *RequestBody) *schema.Schema {
	if mt, ok := body.Content[MediaForm]; ok {
		return mt.Schema
	}
	s := schema.NewObject()
	body.Content[MediaForm] = &MediaType{Schema: s}
	return s
}
