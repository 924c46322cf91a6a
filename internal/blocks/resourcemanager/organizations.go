package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.organizations.get",
	Name:        "Get Organization",
	Description: "Fetches an organization resource identified by the specified resource name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{blocks.Name("The resource name of the organization, e.g. organizations/1234.")},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("organizations", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.organizations.search",
	Name:        "Search Organizations",
	Description: "Searches organization resources that are visible to the user and satisfy the query.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/organizations:search",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.QueryString("query", "Search criteria, e.g. domain:google.com."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("organizations", "search"),
})

var _ = registerIAM("organizations", "Organization", "organizations/1234")
