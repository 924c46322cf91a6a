package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"bucket", "Bucket"},
		{"ifMetagenerationMatch", "If Metageneration Match"},
		{"userProject", "User Project"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, Label(tt.key))
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	p := PathString("bucket", "Name of a bucket.")
	assert.Equal(t, domain.LocationPath, p.Location)
	assert.True(t, p.Required)

	pp := PathProject("projectId", "")
	assert.True(t, pp.Required)
	assert.True(t, pp.DefaultsToProject)

	q := QueryEnum("projection", "", "full", "noAcl")
	assert.Equal(t, domain.LocationQuery, q.Location)
	assert.False(t, q.Required)
	assert.Equal(t, []string{"full", "noAcl"}, q.Enum)

	l := QueryList("permissions", "")
	assert.True(t, l.Repeated)
	assert.Equal(t, domain.FieldArray, l.Type)

	b := Body("")
	assert.Equal(t, BodyKey, b.Key)
	assert.Equal(t, domain.FieldObject, b.Type)

	m := MediaContentType()
	assert.Equal(t, "application/octet-stream", m.Default)

	r := Required(QueryString("x", ""))
	assert.True(t, r.Required)

	d := WithDefault(QueryInt("pageSize", ""), 10)
	assert.Equal(t, 10, d.Default)
}

func TestFields(t *testing.T) {
	got := Fields(
		[]domain.Field{Bucket()},
		MetagenerationPreconditions(),
		nil,
	)

	assert.Len(t, got, 3)
	assert.Equal(t, "bucket", got[0].Key)
	assert.Equal(t, "ifMetagenerationNotMatch", got[2].Key)
}

func TestCatalog_Register(t *testing.T) {
	c := NewCatalog(domain.ServiceStorage)

	b := c.Register(domain.Block{ID: "storage.objectAccessControls.get"})
	assert.Equal(t, domain.ServiceStorage, b.Service)
	assert.Equal(t, "objectAccessControls", b.Resource)

	c.Register(domain.Block{ID: "storage.buckets.operations.get", Resource: "operations"})

	all := c.Blocks()
	assert.Len(t, all, 2)
	assert.Equal(t, "operations", all[1].Resource)

	all[0].ID = "mutated"
	assert.Equal(t, "storage.objectAccessControls.get", c.Blocks()[0].ID)
}

func TestResourceFromID(t *testing.T) {
	assert.Equal(t, "tagValues.tagHolds", resourceFromID("resourcemanager.tagValues.tagHolds.create"))
	assert.Equal(t, "buckets", resourceFromID("storage.buckets.get"))
	assert.Empty(t, resourceFromID("storage.get"))
}
