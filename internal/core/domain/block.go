package domain

import (
	"regexp"
	"strings"
)

// Service identifies the Google Cloud API a block talks to.
type Service string

const (
	// ServiceResourceManager is the Cloud Resource Manager v3 API.
	ServiceResourceManager Service = "resourcemanager"
	// ServiceStorage is the Cloud Storage JSON v1 API.
	ServiceStorage Service = "storage"
)

// Base URLs for the supported services.
const (
	ResourceManagerBaseURL = "https://cloudresourcemanager.googleapis.com/"
	StorageBaseURL         = "https://storage.googleapis.com/storage/v1/"
	StorageUploadBaseURL   = "https://storage.googleapis.com/upload/storage/v1/"
)

// AllServices returns every supported service.
func AllServices() []Service {
	return []Service{ServiceResourceManager, ServiceStorage}
}

// IsValid returns true if the service is recognised.
func (s Service) IsValid() bool {
	switch s {
	case ServiceResourceManager, ServiceStorage:
		return true
	default:
		return false
	}
}

// BaseURL returns the REST root the block paths are resolved against.
func (s Service) BaseURL() string {
	switch s {
	case ServiceResourceManager:
		return ResourceManagerBaseURL
	case ServiceStorage:
		return StorageBaseURL
	default:
		return ""
	}
}

// Description returns a human-readable service name.
func (s Service) Description() string {
	switch s {
	case ServiceResourceManager:
		return "Cloud Resource Manager v3"
	case ServiceStorage:
		return "Cloud Storage v1"
	default:
		return unknownDescription
	}
}

// String returns the string representation.
func (s Service) String() string {
	return string(s)
}

// FieldLocation says where a field ends up in the outgoing request.
type FieldLocation string

const (
	// LocationPath fields are substituted into the URL path template.
	LocationPath FieldLocation = "path"
	// LocationQuery fields are encoded as query parameters.
	LocationQuery FieldLocation = "query"
	// LocationBody fields are marshalled into the JSON request body.
	LocationBody FieldLocation = "body"
	// LocationMedia is the raw payload of a media upload.
	LocationMedia FieldLocation = "media"
)

// FieldType is the JSON type a field value is coerced to.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldInteger FieldType = "integer"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldObject  FieldType = "object"
	FieldArray   FieldType = "array"
)

// Field describes one typed input of a block.
type Field struct {
	// Key is the parameter name as the Google API spells it.
	Key string `json:"key"`
	// Label is the human-readable label for UI display.
	Label string `json:"label,omitempty"`
	// Description explains what this field is for.
	Description string `json:"description,omitempty"`
	// Location is where the value is placed in the request.
	Location FieldLocation `json:"location"`
	// Type is the value type.
	Type FieldType `json:"type"`
	// Required indicates whether this field must be provided.
	Required bool `json:"required"`
	// Default is applied when the caller leaves the field empty.
	Default any `json:"default,omitempty"`
	// Enum restricts string values to a fixed set.
	Enum []string `json:"enum,omitempty"`
	// Repeated marks a query parameter that may be sent more than once.
	Repeated bool `json:"repeated,omitempty"`
	// DefaultsToProject fills the field with the configured project ID.
	DefaultsToProject bool `json:"defaults_to_project,omitempty"`
}

// Block is one declarative API operation.
type Block struct {
	// ID is the unique identifier, e.g. "storage.buckets.get".
	ID string `json:"id"`
	// Service is the API this block belongs to.
	Service Service `json:"service"`
	// Resource is the REST resource collection, e.g. "buckets".
	Resource string `json:"resource"`
	// Name is the human-readable display name.
	Name string `json:"name"`
	// Description provides a brief explanation of the operation.
	Description string `json:"description,omitempty"`
	// HTTPMethod is the verb used for the call.
	HTTPMethod string `json:"http_method"`
	// Path is an RFC 6570 template relative to the service base URL.
	Path string `json:"path"`
	// Fields are the inputs the block accepts.
	Fields []Field `json:"fields"`
	// Scopes are the OAuth scopes minted tokens are requested with.
	Scopes []string `json:"scopes"`
	// Upload sends the media field through the upload endpoint.
	Upload bool `json:"upload,omitempty"`
	// MediaDownload allows alt=media responses that are not JSON.
	MediaDownload bool `json:"media_download,omitempty"`
	// DocsURL links the public REST reference.
	DocsURL string `json:"docs_url,omitempty"`
}

var templateVar = regexp.MustCompile(`\{([+#./;?&]?)([A-Za-z0-9_.]+)\*?\}`)

// PathParams returns the variable names used in the path template, in order.
func (b *Block) PathParams() []string {
	matches := templateVar.FindAllStringSubmatch(b.Path, -1)
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		params = append(params, m[2])
	}
	return params
}

// Field returns the field with the given key.
func (b *Block) Field(key string) (Field, bool) {
	for _, f := range b.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the keys of all required fields.
func (b *Block) RequiredFields() []string {
	var keys []string
	for _, f := range b.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// FieldsAt returns the fields placed at the given location.
func (b *Block) FieldsAt(loc FieldLocation) []Field {
	var fields []Field
	for _, f := range b.Fields {
		if f.Location == loc {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasBody returns true if the block sends a request body.
func (b *Block) HasBody() bool {
	for _, f := range b.Fields {
		if f.Location == LocationBody || f.Location == LocationMedia {
			return true
		}
	}
	return false
}

// Matches reports whether the block ID, name or description contains the
// given term, ignoring case.
func (b *Block) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.ID), term) ||
		strings.Contains(strings.ToLower(b.Name), term) ||
		strings.Contains(strings.ToLower(b.Description), term)
}
