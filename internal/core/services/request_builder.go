package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

const jsonContentType = "application/json"

// BuildRequest turns a block definition and caller inputs into a ready
// APIRequest. projectID fills fields that default to the configured project.
func BuildRequest(b *domain.Block, inputs map[string]any, projectID string) (*domain.APIRequest, error) {
	if err := checkUnknownInputs(b, inputs); err != nil {
		return nil, err
	}

	values, err := resolveValues(b, inputs, projectID)
	if err != nil {
		return nil, err
	}

	base := b.Service.BaseURL()
	if b.Upload {
		base = domain.StorageUploadBaseURL
	}
	u, err := expandPath(base, b.Path, b, values)
	if err != nil {
		return nil, err
	}

	query, err := encodeQuery(b, values)
	if err != nil {
		return nil, err
	}
	if b.Upload {
		query.Set("uploadType", "media")
	}
	u.RawQuery = query.Encode()

	req := &domain.APIRequest{
		Service: b.Service,
		Method:  b.HTTPMethod,
		URL:     u.String(),
		Header:  make(http.Header),
	}

	switch {
	case b.Upload:
		req.Body = mediaBytes(values[blocks.MediaKey])
		req.ContentType, _ = values[blocks.MediaContentTypeKey].(string)
	case sendsBody(b.HTTPMethod):
		body, err := buildBody(b, values)
		if err != nil {
			return nil, err
		}
		req.Body = body
		req.ContentType = jsonContentType
	}
	if req.ContentType != "" {
		req.Header.Set("Content-Type", req.ContentType)
	}

	return req, nil
}

func checkUnknownInputs(b *domain.Block, inputs map[string]any) error {
	var unknown []string
	for key := range inputs {
		if _, ok := b.Field(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: unknown input %s for block %s", domain.ErrInvalidInput, strings.Join(unknown, ", "), b.ID)
}

// resolveValues applies defaults, checks required fields and coerces every
// supplied value to its field type. Absent fields are left out of the result.
func resolveValues(b *domain.Block, inputs map[string]any, projectID string) (map[string]any, error) {
	values := make(map[string]any, len(b.Fields))
	var missing []string

	for _, f := range b.Fields {
		raw, ok := inputs[f.Key]
		if !ok || isEmpty(raw) {
			switch {
			case f.DefaultsToProject && projectID != "":
				raw = projectID
			case f.Default != nil:
				raw = f.Default
			default:
				if f.Required {
					missing = append(missing, f.Key)
				}
				continue
			}
		}

		v, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		values[f.Key] = v
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, strings.Join(missing, ", "))
	}
	return values, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	default:
		return false
	}
}

// coerce converts a caller value to the field's declared type. Strings are
// accepted for every type so command-line input works unchanged.
func coerce(f domain.Field, raw any) (any, error) {
	invalid := func(want string) error {
		return fmt.Errorf("%w: %s expects %s, got %v", domain.ErrInvalidInput, f.Key, want, raw)
	}

	switch f.Type {
	case domain.FieldInteger:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v != float64(int64(v)) {
				return nil, invalid("an integer")
			}
			return int64(v), nil
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, invalid("an integer")
			}
			return n, nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, invalid("an integer")
			}
			return n, nil
		}
		return nil, invalid("an integer")

	case domain.FieldNumber:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, invalid("a number")
			}
			return n, nil
		}
		return nil, invalid("a number")

	case domain.FieldBoolean:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, invalid("true or false")
			}
			return b, nil
		}
		return nil, invalid("true or false")

	case domain.FieldObject:
		switch v := raw.(type) {
		case map[string]any:
			return v, nil
		case string:
			var obj map[string]any
			if err := json.Unmarshal([]byte(v), &obj); err != nil {
				return nil, invalid("a JSON object")
			}
			return obj, nil
		}
		var obj map[string]any
		data, err := json.Marshal(raw)
		if err != nil || json.Unmarshal(data, &obj) != nil {
			return nil, invalid("a JSON object")
		}
		return obj, nil

	case domain.FieldArray:
		switch v := raw.(type) {
		case []any:
			return v, nil
		case []string:
			out := make([]any, len(v))
			for i, s := range v {
				out[i] = s
			}
			return out, nil
		case string:
			s := strings.TrimSpace(v)
			if strings.HasPrefix(s, "[") {
				var arr []any
				if err := json.Unmarshal([]byte(s), &arr); err != nil {
					return nil, invalid("a JSON array")
				}
				return arr, nil
			}
			parts := strings.Split(s, ",")
			out := make([]any, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out, nil
		}
		return nil, invalid("an array")

	default:
		var s string
		switch v := raw.(type) {
		case string:
			s = v
		case []byte:
			if f.Location == domain.LocationMedia {
				return v, nil
			}
			s = string(v)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			s = fmt.Sprint(v)
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return nil, fmt.Errorf("%w: %s must be one of %s, got %q",
				domain.ErrInvalidInput, f.Key, strings.Join(f.Enum, ", "), s)
		}
		return s, nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// expandPath resolves the block path against base and substitutes its
// template variables with Google's URI template rules.
func expandPath(base, path string, b *domain.Block, values map[string]any) (*url.URL, error) {
	u, err := url.Parse(googleapi.ResolveRelative(base, path))
	if err != nil {
		return nil, fmt.Errorf("%w: bad path template for %s: %v", domain.ErrInvalidInput, b.ID, err)
	}

	expansions := make(map[string]string)
	for _, name := range b.PathParams() {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, name)
		}
		expansions[name] = scalarString(v)
	}
	googleapi.Expand(u, expansions)
	return u, nil
}

func encodeQuery(b *domain.Block, values map[string]any) (url.Values, error) {
	query := make(url.Values)
	for _, f := range b.FieldsAt(domain.LocationQuery) {
		v, ok := values[f.Key]
		if !ok {
			continue
		}
		if arr, isArr := v.([]any); isArr {
			if !f.Repeated {
				return nil, fmt.Errorf("%w: %s does not accept a list", domain.ErrInvalidInput, f.Key)
			}
			for _, item := range arr {
				query.Add(f.Key, scalarString(item))
			}
			continue
		}
		query.Set(f.Key, scalarString(v))
	}
	return query, nil
}

// buildBody assembles the JSON body. A "body" object is the starting
// document and every other body field is set as a top-level property.
func buildBody(b *domain.Block, values map[string]any) ([]byte, error) {
	doc := make(map[string]any)
	if whole, ok := values[blocks.BodyKey].(map[string]any); ok {
		for k, v := range whole {
			doc[k] = v
		}
	}
	for _, f := range b.FieldsAt(domain.LocationBody) {
		if f.Key == blocks.BodyKey {
			continue
		}
		if v, ok := values[f.Key]; ok {
			doc[f.Key] = v
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: encode body for %s: %v", domain.ErrInvalidInput, b.ID, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func sendsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func mediaBytes(v any) []byte {
	switch m := v.(type) {
	case []byte:
		return m
	case string:
		return []byte(m)
	default:
		return nil
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
