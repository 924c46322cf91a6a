package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var tagKeyName = blocks.Name("The resource name of the tag key, e.g. tagKeys/123.")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.create",
	Name:        "Create Tag Key",
	Description: "Creates a new tag key. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/tagKeys",
	Fields: []domain.Field{
		blocks.ValidateOnly(),
		blocks.Required(blocks.BodyString("parent", "The resource name of the tag key's parent, e.g. organizations/123 or projects/my-project.")),
		blocks.Required(blocks.BodyString("shortName", "The user friendly name for a tag key, unique within its parent.")),
		blocks.BodyString("description", "User-assigned description of the tag key."),
		blocks.BodyString("purpose", "A purpose denotes that this tag key is intended for use in policies of a specific policy engine, e.g. GCE_FIREWALL."),
		blocks.BodyObject("purposeData", "Purpose data corresponds to the policy system that the tag is intended for."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagKeys", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.delete",
	Name:        "Delete Tag Key",
	Description: "Deletes a tag key. The key cannot have any child tag values.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		tagKeyName,
		blocks.QueryString("etag", "The etag known to the client for the expected state of the tag key."),
		blocks.ValidateOnly(),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagKeys", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.get",
	Name:        "Get Tag Key",
	Description: "Retrieves a tag key.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{tagKeyName},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("tagKeys", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.getNamespaced",
	Name:        "Get Namespaced Tag Key",
	Description: "Retrieves a tag key by its namespaced name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/tagKeys/namespaced",
	Fields: []domain.Field{
		blocks.Required(blocks.QueryString("name", "A namespaced tag key name, e.g. 42/foo.")),
	},
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagKeys", "getNamespaced"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.list",
	Name:        "List Tag Keys",
	Description: "Lists all tag keys for a parent resource.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/tagKeys",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent", "The resource name of the tag key's parent, e.g. organizations/123.")),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagKeys", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagKeys.patch",
	Name:        "Update Tag Key",
	Description: "Updates the attributes of the tag key. Returns a long-running operation.",
	HTTPMethod:  http.MethodPatch,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		tagKeyName,
		blocks.UpdateMask(),
		blocks.ValidateOnly(),
		blocks.BodyString("description", "User-assigned description of the tag key."),
		blocks.BodyString("etag", "Entity tag for concurrency control."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagKeys", "patch"),
})

var _ = registerIAM("tagKeys", "Tag Key", "tagKeys/123")
