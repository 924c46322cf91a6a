package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var operationID = blocks.PathString("operationId", "The ID of the long-running operation.")

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.operations.cancel",
	Name:        "Cancel Operation",
	Description: "Starts asynchronous cancellation on a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/operations/{operationId}/cancel",
	Fields:      []domain.Field{blocks.Bucket(), operationID},
	Scopes:      blocks.StorageWrite,
	DocsURL:     blocks.StorageDocs("operations", "cancel"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.operations.get",
	Name:        "Get Operation",
	Description: "Gets the latest state of a long-running operation.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/operations/{operationId}",
	Fields:      []domain.Field{blocks.Bucket(), operationID},
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("operations", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.operations.list",
	Name:        "List Operations",
	Description: "Lists operations that match the specified filter in the request.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/operations",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.QueryString("filter", "A filter to narrow down results to a preferred subset."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("operations", "list"),
})
