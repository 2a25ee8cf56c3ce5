// Package openapi holds the OpenAPI 3.0 document model and the assembly
// logic attaching derived schemas to operations, request bodies and
// response content.
package openapi

import "github.com/schemadoc-dev/schemadoc/internal/schema"

// Media types used for request bodies.
const (
	MediaJSON = "application/json"
	MediaForm = "application/x-www-form-urlencoded"
)

// Version is the OpenAPI specification version emitted.
const Version = "3.0.3"

// Document is a complete OpenAPI specification.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Servers    []Server             `json:"servers,omitempty"`
	Paths      map[string]PathItem  `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Info is the document's project metadata.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server is one API server entry.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem maps lower-cased HTTP methods to operations.
type PathItem map[string]*Operation

// Operation is one documented API operation.
type Operation struct {
	OperationID string               `json:"operationId,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Description string               `json:"description,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty"`
}

// RequestBody holds an operation's request content by media type.
type RequestBody struct {
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Content     Content `json:"content"`
}

// Content maps a media type to its schema entry.
type Content map[string]*MediaType

// MediaType holds one schema for one media type.
type MediaType struct {
	Schema *schema.Schema `json:"schema,omitempty"`
}

// Response is one documented response.
type Response struct {
	Description string  `json:"description"`
	Content     Content `json:"content,omitempty"`
}

// Components holds the named schema definitions, emitted sorted by name.
type Components struct {
	Schemas map[string]*schema.Schema `json:"schemas,omitempty"`
}
