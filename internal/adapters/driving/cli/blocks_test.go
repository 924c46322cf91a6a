package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestBlocksCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range blocksCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"list", "show", "services"}, names)
}

func TestBlocksList_All(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "resourcemanager.projects.get")
	assert.Contains(t, out, "storage.buckets.list")
	assert.Contains(t, out, "3 blocks")
}

func TestBlocksList_FilterAndService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "list", "--service", "storage", "--filter", "object")

	require.NoError(t, err)
	assert.Contains(t, out, "storage.objects.get")
	assert.NotContains(t, out, "storage.buckets.list")
	assert.Contains(t, out, "1 blocks")
}

func TestBlocksList_FlagsDoNotLeak(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "blocks", "list", "-s", "resourcemanager")
	require.NoError(t, err)

	out, err := execute(t, "blocks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 blocks")
}

func TestBlocksList_NoMatch(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "list", "-f", "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No blocks found.")
}

func TestBlocksList_InvalidService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "blocks", "list", "--service", "compute")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBlocksList_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "list", "--json", "-s", "resourcemanager")
	require.NoError(t, err)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "resourcemanager.projects.get", blocks[0]["id"])
	assert.Equal(t, "v3/{+name}", blocks[0]["path"])
}

func TestBlocksList_NotConfigured(t *testing.T) {
	Configure(nil)

	_, err := execute(t, "blocks", "list")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestBlocksShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "show", "storage.buckets.list")

	require.NoError(t, err)
	assert.Contains(t, out, "List Buckets")
	assert.Contains(t, out, "Cloud Storage v1")
	assert.Contains(t, out, "GET https://storage.googleapis.com/storage/v1/b")
	assert.Contains(t, out, "project (query, string, required, defaults to project)")
	assert.Contains(t, out, "one of: full, noAcl")
	assert.Contains(t, out, "buckets/list")
}

func TestBlocksShow_UnknownBlock(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "blocks", "show", "storage.nope")

	assert.ErrorIs(t, err, domain.ErrUnknownBlock)
}

func TestBlocksShow_RequiresArg(t *testing.T) {
	_, err := execute(t, "blocks", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestServicesCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "blocks", "services")

	require.NoError(t, err)
	assert.Contains(t, out, "storage")
	assert.Contains(t, out, "2 blocks")
	assert.Contains(t, out, "https://cloudresourcemanager.googleapis.com/")
}

func TestDescribeField(t *testing.T) {
	tests := []struct {
		name  string
		field domain.Field
		want  string
	}{
		{
			name:  "plain",
			field: domain.Field{Key: "bucket", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
			want:  "bucket (path, string, required)",
		},
		{
			name:  "default and repeated",
			field: domain.Field{Key: "fields", Location: domain.LocationQuery, Type: domain.FieldArray, Repeated: true, Default: "x"},
			want:  "fields (query, array, repeated, default x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeField(tt.field))
		})
	}
}
