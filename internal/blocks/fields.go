package blocks

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// Keys with special meaning to the request builder.
const (
	// BodyKey is an object field that becomes the whole request body.
	BodyKey = "body"
	// MediaKey is the raw upload payload.
	MediaKey = "media"
	// MediaContentTypeKey sets the Content-Type of the upload payload.
	MediaContentTypeKey = "mediaContentType"
	// ProjectKey is the storage project query parameter.
	ProjectKey = "project"
)

// Label turns an API parameter name into a display label,
// e.g. "ifMetagenerationMatch" becomes "If Metageneration Match".
func Label(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func field(key, desc string, loc domain.FieldLocation, typ domain.FieldType) domain.Field {
	return domain.Field{
		Key:         key,
		Label:       Label(key),
		Description: desc,
		Location:    loc,
		Type:        typ,
	}
}

// PathString is a required path parameter.
func PathString(key, desc string) domain.Field {
	f := field(key, desc, domain.LocationPath, domain.FieldString)
	f.Required = true
	return f
}

// PathProject is a required path parameter that defaults to the configured project.
func PathProject(key, desc string) domain.Field {
	f := PathString(key, desc)
	f.DefaultsToProject = true
	return f
}

// QueryString is an optional string query parameter.
func QueryString(key, desc string) domain.Field {
	return field(key, desc, domain.LocationQuery, domain.FieldString)
}

// QueryInt is an optional integer query parameter.
func QueryInt(key, desc string) domain.Field {
	return field(key, desc, domain.LocationQuery, domain.FieldInteger)
}

// QueryBool is an optional boolean query parameter.
func QueryBool(key, desc string) domain.Field {
	return field(key, desc, domain.LocationQuery, domain.FieldBoolean)
}

// QueryEnum is an optional string query parameter restricted to values.
func QueryEnum(key, desc string, values ...string) domain.Field {
	f := field(key, desc, domain.LocationQuery, domain.FieldString)
	f.Enum = values
	return f
}

// QueryList is a repeated string query parameter.
func QueryList(key, desc string) domain.Field {
	f := field(key, desc, domain.LocationQuery, domain.FieldArray)
	f.Repeated = true
	return f
}

// QueryProject is the storage project parameter, filled from configuration.
func QueryProject() domain.Field {
	f := QueryString(ProjectKey, "A valid API project identifier. Defaults to the configured project.")
	f.Required = true
	f.DefaultsToProject = true
	return f
}

// BodyObject is an object field. With key BodyKey it is the whole request body.
func BodyObject(key, desc string) domain.Field {
	return field(key, desc, domain.LocationBody, domain.FieldObject)
}

// Body is the whole JSON request body.
func Body(desc string) domain.Field {
	return BodyObject(BodyKey, desc)
}

// BodyString is a top-level string property of the request body.
func BodyString(key, desc string) domain.Field {
	return field(key, desc, domain.LocationBody, domain.FieldString)
}

// BodyArray is a top-level array property of the request body.
func BodyArray(key, desc string) domain.Field {
	return field(key, desc, domain.LocationBody, domain.FieldArray)
}

// BodyBool is a top-level boolean property of the request body.
func BodyBool(key, desc string) domain.Field {
	return field(key, desc, domain.LocationBody, domain.FieldBoolean)
}

// Media is the raw upload payload.
func Media(desc string) domain.Field {
	f := field(MediaKey, desc, domain.LocationMedia, domain.FieldString)
	f.Required = true
	return f
}

// MediaContentType sets the upload payload's media type.
func MediaContentType() domain.Field {
	f := field(MediaContentTypeKey, "Media type of the uploaded payload.", domain.LocationMedia, domain.FieldString)
	f.Default = "application/octet-stream"
	return f
}

// Required returns a copy of f marked required.
func Required(f domain.Field) domain.Field {
	f.Required = true
	return f
}

// WithDefault returns a copy of f with a default value.
func WithDefault(f domain.Field, v any) domain.Field {
	f.Default = v
	return f
}

// Fields concatenates field lists.
func Fields(groups ...[]domain.Field) []domain.Field {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]domain.Field, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
