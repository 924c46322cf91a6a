package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var (
	hmacProject  = blocks.PathProject("projectId", "Project ID owning the key. Defaults to the configured project.")
	hmacAccessID = blocks.PathString("accessId", "Name of the HMAC key.")
)

var _ = catalog.Register(domain.Block{
	ID:          "storage.hmacKeys.create",
	Name:        "Create HMAC Key",
	Description: "Creates a new HMAC key for the specified service account. The secret is returned only once.",
	HTTPMethod:  http.MethodPost,
	Path:        "projects/{projectId}/hmacKeys",
	Fields: []domain.Field{
		hmacProject,
		blocks.Required(blocks.QueryString("serviceAccountEmail", "Email address of the service account.")),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageAdmin,
	DocsURL: blocks.StorageDocs("hmacKeys", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.hmacKeys.delete",
	Name:        "Delete HMAC Key",
	Description: "Deletes an HMAC key. The key must be in the INACTIVE state.",
	HTTPMethod:  http.MethodDelete,
	Path:        "projects/{projectId}/hmacKeys/{accessId}",
	Fields:      []domain.Field{hmacProject, hmacAccessID, blocks.UserProject()},
	Scopes:      blocks.StorageWrite,
	DocsURL:     blocks.StorageDocs("hmacKeys", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.hmacKeys.get",
	Name:        "Get HMAC Key",
	Description: "Retrieves an HMAC key's metadata.",
	HTTPMethod:  http.MethodGet,
	Path:        "projects/{projectId}/hmacKeys/{accessId}",
	Fields:      []domain.Field{hmacProject, hmacAccessID, blocks.UserProject()},
	Scopes:      blocks.StorageAdminRead,
	DocsURL:     blocks.StorageDocs("hmacKeys", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.hmacKeys.list",
	Name:        "List HMAC Keys",
	Description: "Retrieves a list of HMAC keys matching the criteria.",
	HTTPMethod:  http.MethodGet,
	Path:        "projects/{projectId}/hmacKeys",
	Fields: blocks.Fields(
		[]domain.Field{
			hmacProject,
			blocks.QueryString("serviceAccountEmail", "If present, only keys for the given service account are returned."),
			blocks.QueryBool("showDeletedKeys", "Whether or not to show keys in the DELETED state."),
			blocks.UserProject(),
		},
		blocks.StoragePaging(),
	),
	Scopes:  blocks.StorageAdminRead,
	DocsURL: blocks.StorageDocs("hmacKeys", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.hmacKeys.update",
	Name:        "Update HMAC Key",
	Description: "Updates the state of an HMAC key.",
	HTTPMethod:  http.MethodPut,
	Path:        "projects/{projectId}/hmacKeys/{accessId}",
	Fields: []domain.Field{
		hmacProject,
		hmacAccessID,
		blocks.UserProject(),
		blocks.Required(blocks.Body("HmacKeyMetadata with the new state, e.g. {\"state\": \"INACTIVE\"}.")),
	},
	Scopes:  blocks.StorageAdmin,
	DocsURL: blocks.StorageDocs("hmacKeys", "update"),
})
