package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var _ = catalog.Register(domain.Block{
	ID:          "storage.projects.serviceAccount.get",
	Name:        "Get Storage Service Account",
	Description: "Get the email address of this project's Google Cloud Storage service account.",
	HTTPMethod:  http.MethodGet,
	Path:        "projects/{projectId}/serviceAccount",
	Fields: []domain.Field{
		blocks.PathProject("projectId", "Project ID. Defaults to the configured project."),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("projects/serviceAccount", "get"),
})
