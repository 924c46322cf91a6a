package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/blocks/catalog"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func catalogBlock(t *testing.T, id string) *domain.Block {
	t.Helper()
	b, err := NewBlockRegistry(catalog.All()).Get(id)
	require.NoError(t, err)
	return b
}

func objectPatchBlock() *domain.Block {
	return &domain.Block{
		ID:         "storage.objects.patch",
		Service:    domain.ServiceStorage,
		HTTPMethod: http.MethodPatch,
		Path:       "b/{bucket}/o/{object}",
		Fields: []domain.Field{
			blocks.Bucket(),
			blocks.Object(),
			blocks.QueryInt("ifGenerationMatch", ""),
			blocks.QueryBool("overrideUnlockedRetention", ""),
			blocks.Projection(),
			blocks.QueryList("fields", ""),
			blocks.Body("Object resource."),
			blocks.BodyString("contentType", ""),
		},
	}
}

func TestBuildRequest_PathQueryAndBody(t *testing.T) {
	req, err := BuildRequest(objectPatchBlock(), map[string]any{
		"bucket":                    "my-bucket",
		"object":                    "dir/file.txt",
		"ifGenerationMatch":         "42",
		"overrideUnlockedRetention": "true",
		"projection":                "full",
		"body":                      `{"metadata":{"owner":"ops"}}`,
		"contentType":               "text/plain",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, domain.ServiceStorage, req.Service)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t,
		"https://storage.googleapis.com/storage/v1/b/my-bucket/o/dir%2Ffile.txt?ifGenerationMatch=42&overrideUnlockedRetention=true&projection=full",
		req.URL)
	assert.JSONEq(t, `{"metadata":{"owner":"ops"},"contentType":"text/plain"}`, string(req.Body))
	assert.Equal(t, "application/json", req.ContentType)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestBuildRequest_ReservedExpansionKeepsSlashes(t *testing.T) {
	b := catalogBlock(t, "resourcemanager.projects.getIamPolicy")

	req, err := BuildRequest(b, map[string]any{"resource": "projects/my-project"}, "")

	require.NoError(t, err)
	assert.Equal(t, "https://cloudresourcemanager.googleapis.com/v3/projects/my-project:getIamPolicy", req.URL)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{}`, string(req.Body))
}

func TestBuildRequest_ProjectDefault(t *testing.T) {
	b := catalogBlock(t, "storage.buckets.list")

	req, err := BuildRequest(b, map[string]any{"maxResults": 5}, "my-project")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/storage/v1/b?maxResults=5&project=my-project", req.URL)
	assert.Nil(t, req.Body)
	assert.Empty(t, req.ContentType)

	// An explicit project wins over the configured one.
	req, err = BuildRequest(b, map[string]any{"project": "other"}, "my-project")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/storage/v1/b?project=other", req.URL)

	// Without a configured project the field is required.
	_, err = BuildRequest(b, map[string]any{}, "")
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "project")
}

func TestBuildRequest_MissingRequiredNamesEveryField(t *testing.T) {
	_, err := BuildRequest(objectPatchBlock(), map[string]any{"bucket": ""}, "")

	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "bucket, object")
}

func TestBuildRequest_UnknownInput(t *testing.T) {
	_, err := BuildRequest(objectPatchBlock(), map[string]any{
		"bucket": "b", "object": "o", "zeta": 1, "alpha": 2,
	}, "")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "alpha, zeta")
}

func TestBuildRequest_Coercion(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantErr bool
		wantURL string
	}{
		{"integer from float", map[string]any{"ifGenerationMatch": float64(7)}, false, "?ifGenerationMatch=7"},
		{"fractional integer", map[string]any{"ifGenerationMatch": 1.5}, true, ""},
		{"integer from text", map[string]any{"ifGenerationMatch": "seven"}, true, ""},
		{"boolean from text", map[string]any{"overrideUnlockedRetention": "yes"}, true, ""},
		{"enum ok", map[string]any{"projection": "noAcl"}, false, "?projection=noAcl"},
		{"enum rejected", map[string]any{"projection": "everything"}, true, ""},
		{"repeated from comma list", map[string]any{"fields": "name, size"}, false, "?fields=name&fields=size"},
		{"repeated from json", map[string]any{"fields": `["name","size"]`}, false, "?fields=name&fields=size"},
		{"bad object", map[string]any{"body": "{not json"}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := map[string]any{"bucket": "b", "object": "o"}
			for k, v := range tt.input {
				inputs[k] = v
			}

			req, err := BuildRequest(objectPatchBlock(), inputs, "")

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://storage.googleapis.com/storage/v1/b/b/o/o"+tt.wantURL, req.URL)
		})
	}
}

func TestBuildRequest_Upload(t *testing.T) {
	b := catalogBlock(t, "storage.objects.insert")

	req, err := BuildRequest(b, map[string]any{
		"bucket":           "my-bucket",
		"name":             "hello.txt",
		"media":            "hello",
		"mediaContentType": "text/plain",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/upload/storage/v1/b/my-bucket/o?name=hello.txt&uploadType=media", req.URL)
	assert.Equal(t, []byte("hello"), req.Body)
	assert.Equal(t, "text/plain", req.ContentType)
	assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
}

func TestBuildRequest_UploadDefaultsContentType(t *testing.T) {
	b := catalogBlock(t, "storage.objects.insert")

	req, err := BuildRequest(b, map[string]any{
		"bucket": "my-bucket",
		"name":   "blob.bin",
		"media":  []byte{0x00, 0x01},
	}, "")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, req.Body)
	assert.Equal(t, "application/octet-stream", req.ContentType)
}

func TestBuildRequest_BodyMerge(t *testing.T) {
	b := catalogBlock(t, "resourcemanager.projects.setIamPolicy")

	req, err := BuildRequest(b, map[string]any{
		"resource":   "projects/p",
		"policy":     map[string]any{"bindings": []any{}},
		"updateMask": "bindings",
	}, "")

	require.NoError(t, err)
	assert.JSONEq(t, `{"policy":{"bindings":[]},"updateMask":"bindings"}`, string(req.Body))
}

func TestBuildRequest_DeleteHasNoBody(t *testing.T) {
	b := catalogBlock(t, "storage.buckets.delete")

	req, err := BuildRequest(b, map[string]any{"bucket": "gone"}, "")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Nil(t, req.Body)
}
