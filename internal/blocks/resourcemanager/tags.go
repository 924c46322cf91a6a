package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagBindings.create",
	Name:        "Create Tag Binding",
	Description: "Creates a tag binding between a tag value and a Google Cloud resource.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/tagBindings",
	Fields: []domain.Field{
		blocks.ValidateOnly(),
		blocks.Required(blocks.BodyString("parent",
			"The full resource name of the resource the tag value is bound to, e.g. //cloudresourcemanager.googleapis.com/projects/123.")),
		blocks.BodyString("tagValue", "The tag value to bind, e.g. tagValues/456."),
		blocks.BodyString("tagValueNamespacedName", "The namespaced name of the tag value, e.g. 123/environment/production."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagBindings", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagBindings.delete",
	Name:        "Delete Tag Binding",
	Description: "Deletes a tag binding.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		blocks.Name("The name of the tag binding, e.g. tagBindings/%2F%2Fcloudresourcemanager.googleapis.com%2Fprojects%2F123/tagValues/456."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("tagBindings", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.tagBindings.list",
	Name:        "List Tag Bindings",
	Description: "Lists the tag bindings applied to a resource.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/tagBindings",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent",
				"The full resource name of a resource, e.g. //cloudresourcemanager.googleapis.com/projects/123.")),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("tagBindings", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.effectiveTags.list",
	Name:        "List Effective Tags",
	Description: "Return a list of effective tags for the given resource, including inherited tags.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/effectiveTags",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent",
				"The full resource name of a resource, e.g. //cloudresourcemanager.googleapis.com/projects/123.")),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("effectiveTags", "list"),
})
