package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var tagValueName = blocks.Name("The resource name of the tag value, e.g. tagValues/456.")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.create",
	Name:        "Create Tag Value",
	Description: "Creates a tag value as a child of the specified tag key. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/tagValues",
	Fields: []domain.Field{
		blocks.ValidateOnly(),
		blocks.Required(blocks.BodyString("parent", "The resource name of the new tag value's parent tag key, e.g. tagKeys/123.")),
		blocks.Required(blocks.BodyString("shortName", "User-assigned short name, unique within its parent tag key.")),
		blocks.BodyString("description", "User-assigned description of the tag value."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagValues", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.delete",
	Name:        "Delete Tag Value",
	Description: "Deletes a tag value. The value cannot have any bindings.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		tagValueName,
		blocks.QueryString("etag", "The etag for the tag value to delete."),
		blocks.ValidateOnly(),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagValues", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.get",
	Name:        "Get Tag Value",
	Description: "Retrieves a tag value.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{tagValueName},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("tagValues", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.getNamespaced",
	Name:        "Get Namespaced Tag Value",
	Description: "Retrieves a tag value by its namespaced name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/tagValues/namespaced",
	Fields: []domain.Field{
		blocks.Required(blocks.QueryString("name", "A namespaced tag value name, e.g. 42/foo/abc.")),
	},
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagValues", "getNamespaced"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.list",
	Name:        "List Tag Values",
	Description: "Lists all tag values for a specific tag key.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/tagValues",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent", "The resource name of the parent, e.g. tagKeys/123.")),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagValues", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.patch",
	Name:        "Update Tag Value",
	Description: "Updates the attributes of the tag value. Returns a long-running operation.",
	HTTPMethod:  http.MethodPatch,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		tagValueName,
		blocks.UpdateMask(),
		blocks.ValidateOnly(),
		blocks.BodyString("description", "User-assigned description of the tag value."),
		blocks.BodyString("etag", "Entity tag for concurrency control."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagValues", "patch"),
})

var _ = registerIAM("tagValues", "Tag Value", "tagValues/456")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.tagHolds.create",
	Name:        "Create Tag Hold",
	Description: "Creates a tag hold on a tag value, preventing its deletion while the holder uses it.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/{+parent}/tagHolds",
	Fields: []domain.Field{
		blocks.PathString("parent", "The resource name of the tag hold's parent tag value, e.g. tagValues/456."),
		blocks.ValidateOnly(),
		blocks.Required(blocks.BodyString("holder", "The name of the resource where the tag value is being used.")),
		blocks.BodyString("origin", "An optional string representing the origin of this request."),
		blocks.BodyString("helpLink", "A URL where an end user can learn more about removing this hold."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagValues.tagHolds", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.tagHolds.delete",
	Name:        "Delete Tag Hold",
	Description: "Deletes a tag hold.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		blocks.Name("The resource name of the tag hold, e.g. tagValues/456/tagHolds/789."),
		blocks.ValidateOnly(),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagValues.tagHolds", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagValues.tagHolds.list",
	Name:        "List Tag Holds",
	Description: "Lists the tag holds under a tag value.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+parent}/tagHolds",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.PathString("parent", "The resource name of the parent tag value, e.g. tagValues/456."),
			blocks.QueryString("filter", "Criteria used to select a subset of tag holds, e.g. holder=//compute.googleapis.com/compute/projects/p/zones/z/instances/i."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagValues.tagHolds", "list"),
})
