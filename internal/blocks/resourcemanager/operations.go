package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.operations.get",
	Name:        "Get Operation",
	Description: "Gets the latest state of a long-running operation.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{blocks.Name("The name of the operation resource, e.g. operations/cf.1234.")},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("operations", "get"),
})
