package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var managedFolder = blocks.PathString("managedFolder", "The managed folder name/path.")

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.delete",
	Name:        "Delete Managed Folder",
	Description: "Permanently deletes a managed folder.",
	HTTPMethod:  http.MethodDelete,
	Path:        "b/{bucket}/managedFolders/{managedFolder}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			managedFolder,
			blocks.QueryBool("allowNonEmpty", "Allows the deletion of a managed folder even if it is not empty."),
		},
		blocks.MetagenerationPreconditions(),
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("managedFolders", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.get",
	Name:        "Get Managed Folder",
	Description: "Returns metadata of the specified managed folder.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/managedFolders/{managedFolder}",
	Fields: blocks.Fields(
		[]domain.Field{blocks.Bucket(), managedFolder},
		blocks.MetagenerationPreconditions(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("managedFolders", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.getIamPolicy",
	Name:        "Get Managed Folder IAM Policy",
	Description: "Returns an IAM policy for the specified managed folder.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/managedFolders/{managedFolder}/iam",
	Fields: []domain.Field{
		blocks.Bucket(),
		managedFolder,
		blocks.QueryInt("optionsRequestedPolicyVersion", "The IAM policy format version to be returned."),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("managedFolders", "getIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.insert",
	Name:        "Create Managed Folder",
	Description: "Creates a new managed folder.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/managedFolders",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Required(blocks.BodyString("name", "The name of the managed folder, e.g. reports/2024/.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("managedFolders", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.list",
	Name:        "List Managed Folders",
	Description: "Lists managed folders in the given bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/managedFolders",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.QueryString("prefix", "The managed folder name/path prefix to filter the output list of results."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("managedFolders", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.setIamPolicy",
	Name:        "Set Managed Folder IAM Policy",
	Description: "Updates an IAM policy for the specified managed folder.",
	HTTPMethod:  http.MethodPut,
	Path:        "b/{bucket}/managedFolders/{managedFolder}/iam",
	Fields: []domain.Field{
		blocks.Bucket(),
		managedFolder,
		blocks.UserProject(),
		blocks.Required(blocks.Body("The complete Policy resource.")),
	},
	Scopes:  blocks.StorageFullControl,
	DocsURL: blocks.StorageDocs("managedFolders", "setIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.managedFolders.testIamPermissions",
	Name:        "Test Managed Folder IAM Permissions",
	Description: "Tests a set of permissions on the given managed folder to see which, if any, are held by the caller.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/managedFolders/{managedFolder}/iam/testPermissions",
	Fields: []domain.Field{
		blocks.Bucket(),
		managedFolder,
		blocks.Permissions(),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("managedFolders", "testIamPermissions"),
})
