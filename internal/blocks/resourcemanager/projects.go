package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var projectName = blocks.Name("The name of the project, e.g. projects/415104041262 or projects/my-project-id.")

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.create",
	Name:        "Create Project",
	Description: "Request that a new project be created. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/projects",
	Fields: []domain.Field{
		blocks.Required(blocks.BodyString("projectId", "The unique, user-assigned ID of the project.")),
		blocks.BodyString("displayName", "A user-assigned display name of the project."),
		blocks.BodyString("parent", "The project's parent, e.g. folders/123 or organizations/123."),
		blocks.BodyObject("labels", "Labels applied to the project."),
		blocks.BodyObject("tags", "Tag keys and values to bind at creation."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("projects", "create"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.delete",
	Name:        "Delete Project",
	Description: "Marks the project for deletion. The project enters the DELETE_REQUESTED state.",
	HTTPMethod:  http.MethodDelete,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{projectName},
	Scopes:      blocks.ResourceManagerWrite,
	DocsURL:     blocks.ResourceManagerDocs("projects", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.get",
	Name:        "Get Project",
	Description: "Retrieves the project identified by the specified name.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/{+name}",
	Fields:      []domain.Field{projectName},
	Scopes:      blocks.ResourceManagerRead,
	DocsURL:     blocks.ResourceManagerDocs("projects", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.list",
	Name:        "List Projects",
	Description: "Lists projects that are direct children of the specified folder or organization.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/projects",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Required(blocks.QueryString("parent", "The parent resource whose projects are listed, e.g. folders/123.")),
			blocks.ShowDeleted(),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("projects", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.move",
	Name:        "Move Project",
	Description: "Move a project to another place in the resource hierarchy. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/{+name}:move",
	Fields: []domain.Field{
		projectName,
		blocks.Required(blocks.BodyString("destinationParent", "The new parent, e.g. folders/123.")),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("projects", "move"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.patch",
	Name:        "Update Project",
	Description: "Updates the display name and labels of the project. Returns a long-running operation.",
	HTTPMethod:  http.MethodPatch,
	Path:        "v3/{+name}",
	Fields: []domain.Field{
		projectName,
		blocks.UpdateMask(),
		blocks.BodyString("displayName", "A user-assigned display name of the project."),
		blocks.BodyObject("labels", "Labels applied to the project."),
	},
	Scopes:  blocks.ResourceManagerWrite,
	DocsURL: blocks.ResourceManagerDocs("projects", "patch"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.search",
	Name:        "Search Projects",
	Description: "Search for projects that the caller has the resourcemanager.projects.get permission on.",
	HTTPMethod:  http.MethodGet,
	Path:        "v3/projects:search",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.QueryString("query", "Search criteria, e.g. labels.color:red AND state:ACTIVE."),
		},
		blocks.PageSizePaging(),
	),
	Scopes:  blocks.ResourceManagerRead,
	DocsURL: blocks.ResourceManagerDocs("projects", "search"),
})

var _ = catalog.Register(domain.Block{
	ID:          "resourcemanager.projects.undelete",
	Name:        "Undelete Project",
	Description: "Restores the project in the DELETE_REQUESTED state. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "v3/{+name}:undelete",
	Fields:      []domain.Field{projectName},
	Scopes:      blocks.ResourceManagerWrite,
	DocsURL:     blocks.ResourceManagerDocs("projects", "undelete"),
})

var _ = registerIAM("projects", "Project", "projects/my-project-id")
