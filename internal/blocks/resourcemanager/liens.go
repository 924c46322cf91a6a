package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var lienName = blocks.Name("The name of the lien, e.g. liens/1234abcd.")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.liens.create",
	Name:        "Create Lien",
	Description: "Creates a lien which applies to the resource denoted by the parent field.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/liens",
	Fields: []domain.Field{
		blocks.Required(blocks.BodyString("parent", "A reference to the resource this lien is attached to, e.g. projects/1234.")),
		blocks.Required(blocks.BodyArray("restrictions", "The types of operations which should be blocked, e.g. [\"resourcemanager.projects.delete\"].")),
		blocks.Required(blocks.BodyString("reason", "A stable, user-visible string describing the purpose of the lien.")),
		blocks.Required(blocks.BodyString("origin", "A stable identifier for the creator of the lien, e.g. compute.googleapis.com.")),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("liens", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.liens.delete",
	Name:        "Delete Lien",
	Description: "Deletes a lien by name.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{lienName},
	Scopes:      blocks.ResourceManagerWrite,
	DocsURL:     blocks.ResourceManagerDocs("liens", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.liens.get",
	Name:        "Get Lien",
	Description: "Retrieves a lien by name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{lienName},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("liens", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.liens.list",
	Name:        "List Liens",
	Description: "Lists all liens applied to the parent resource.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/liens",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent", "The name of the resource to list all attached liens, e.g. projects/1234.")),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("liens", "list"),
})
