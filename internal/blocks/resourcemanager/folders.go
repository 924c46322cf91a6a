package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var folderName = blocks.Name("The resource name of the folder, e.g. folders/1234.")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.create",
	Name:        "Create Folder",
	Description: "Creates a folder in the resource hierarchy. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/folders",
	Fields: []domain.Field{
		blocks.Required(blocks.BodyString("parent", "The folder's parent, e.g. folders/{folder_id} or organizations/{org_id}.")),
		blocks.Required(blocks.BodyString("displayName", "The folder's display name. Must be unique among its siblings.")),
		blocks.BodyObject("tags", "Tag keys and values to bind at creation, e.g. {\"123/environment\": \"production\"}."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("folders", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.delete",
	Name:        "Delete Folder",
	Description: "Requests deletion of a folder. The folder is moved into the DELETE_REQUESTED state.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{folderName},
	Scopes:      blocks.ResourceManagerWrite,
	DocsURL:     blocks.ResourceManagerDocs("folders", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.get",
	Name:        "Get Folder",
	Description: "Retrieves a folder identified by the supplied resource name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{folderName},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("folders", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.list",
	Name:        "List Folders",
	Description: "Lists the folders that are direct descendants of the supplied parent resource.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/folders",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent", "The parent whose folders are listed, e.g. folders/123 or organizations/123.")),
			blocks.ShowDeleted(),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("folders", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.move",
	Name:        "Move Folder",
	Description: "Moves a folder under a new resource parent. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/{+name}:move",
	Fields: []domain.Field{
		folderName,
		blocks.Required(blocks.BodyString("destinationParent", "The new parent, e.g. folders/123 or organizations/123.")),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("folders", "move"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.patch",
	Name:        "Update Folder",
	Description: "Updates a folder's display name. Returns a long-running operation.",
	HTTPMethod:  http.MethodPatch,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		folderName,
		blocks.UpdateMask(),
		blocks.BodyString("displayName", "The folder's new display name."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("folders", "patch"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.search",
	Name:        "Search Folders",
	Description: "Searches for folders that match specific filter criteria the caller has permission to see.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/folders:search",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.QueryString("query", "Search criteria, e.g. displayName=Test* AND state=ACTIVE."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("folders", "search"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.folders.undelete",
	Name:        "Undelete Folder",
	Description: "Cancels the deletion request for a folder in the DELETE_REQUESTED state.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/{+name}:undelete",
	Fields:      []domain.Field{folderName},
	Scopes:      blocks.ResourceManagerWrite,
	DocsURL:     blocks.ResourceManagerDocs("folders", "undelete"),
})

var _ = registerIAM("folders", "Folder", "folders/1234")
