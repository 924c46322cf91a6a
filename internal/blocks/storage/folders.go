package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// Folders exist only in buckets with hierarchical namespace enabled.

var folderPath = blocks.PathString("folder", "Name of a folder, e.g. logs/2024/.")

var _ = catalog.Register(domain.Block{
	ID:          "storage.folders.delete",
	Name:        "Delete Folder",
	Description: "Permanently deletes an empty folder.",
	HTTPMethod:  http.MethodDelete,
	Path:        "b/{bucket}/folders/{folder}",
	Fields:      blocks.Fields([]domain.Field{blocks.Bucket(), folderPath}, blocks.MetagenerationPreconditions()),
	Scopes:      blocks.StorageWrite,
	DocsURL:     blocks.StorageDocs("folders", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.folders.get",
	Name:        "Get Folder",
	Description: "Returns metadata for the specified folder.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/folders/{folder}",
	Fields:      blocks.Fields([]domain.Field{blocks.Bucket(), folderPath}, blocks.MetagenerationPreconditions()),
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("folders", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.folders.insert",
	Name:        "Create Folder",
	Description: "Creates a new folder.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/folders",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.QueryBool("recursive", "If true, any parent folder which doesn't exist will be created automatically."),
		blocks.Required(blocks.BodyString("name", "The name of the folder, e.g. logs/2024/.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("folders", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.folders.list",
	Name:        "List Folders",
	Description: "Retrieves a list of folders matching the criteria.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/folders",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.QueryString("delimiter", "Returns results in a directory-like mode. The only supported value is '/'."),
			blocks.QueryString("endOffset", "Filter results to folders whose names are lexicographically before endOffset."),
			blocks.QueryString("prefix", "Filter results to folders whose paths begin with this prefix."),
			blocks.QueryString("startOffset", "Filter results to folders whose names are lexicographically equal to or after startOffset."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("folders", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.folders.rename",
	Name:        "Rename Folder",
	Description: "Renames a source folder to a destination folder. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/folders/{sourceFolder}/renameTo/folders/{destinationFolder}",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.PathString("sourceFolder", "Name of the source folder."),
		blocks.PathString("destinationFolder", "Name of the destination folder."),
		blocks.QueryInt("ifSourceMetagenerationMatch", "Makes the operation conditional on whether the source folder's current metageneration matches the given value."),
		blocks.QueryInt("ifSourceMetagenerationNotMatch", "Makes the operation conditional on whether the source folder's current metageneration does not match the given value."),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("folders", "rename"),
})
