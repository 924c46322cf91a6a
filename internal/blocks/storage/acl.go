package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// aclCollection describes one of the three access-control collections.
// They share delete, get, insert, list, patch and update.
type aclCollection struct {
	resource string
	noun     string
	// path is the collection path; entries live under path + "/{entity}".
	path string
	// target are the path and query fields identifying the parent.
	target []domain.Field
	// listExtra are additional list parameters.
	listExtra []domain.Field
}

func (a aclCollection) register() []domain.Block {
	entityPath := a.path + "/{entity}"
	aclBody := blocks.Body("The access control entry, e.g. {\"entity\": \"user-liz@example.com\", \"role\": \"READER\"}.")

	return []domain.Block{
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".delete",
			Name:        "Delete " + a.noun,
			Description: "Permanently deletes the " + a.noun + " entry for the specified entity.",
			HTTPMethod:  http.MethodDelete,
			Path:        entityPath,
			Fields:      blocks.Fields(a.target, []domain.Field{blocks.Entity()}),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "delete"),
		}),
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".get",
			Name:        "Get " + a.noun,
			Description: "Returns the " + a.noun + " entry for the specified entity.",
			HTTPMethod:  http.MethodGet,
			Path:        entityPath,
			Fields:      blocks.Fields(a.target, []domain.Field{blocks.Entity()}),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "get"),
		}),
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".insert",
			Name:        "Create " + a.noun,
			Description: "Creates a new " + a.noun + " entry.",
			HTTPMethod:  http.MethodPost,
			Path:        a.path,
			Fields:      blocks.Fields(a.target, []domain.Field{blocks.Required(aclBody)}),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "insert"),
		}),
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".list",
			Name:        "List " + a.noun + "s",
			Description: "Retrieves " + a.noun + " entries.",
			HTTPMethod:  http.MethodGet,
			Path:        a.path,
			Fields:      blocks.Fields(a.target, a.listExtra),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "list"),
		}),
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".patch",
			Name:        "Patch " + a.noun,
			Description: "Patches a " + a.noun + " entry.",
			HTTPMethod:  http.MethodPatch,
			Path:        entityPath,
			Fields:      blocks.Fields(a.target, []domain.Field{blocks.Entity(), blocks.Required(aclBody)}),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "patch"),
		}),
		catalog.Register(domain.Block{
			ID:          "storage." + a.resource + ".update",
			Name:        "Update " + a.noun,
			Description: "Updates a " + a.noun + " entry.",
			HTTPMethod:  http.MethodPut,
			Path:        entityPath,
			Fields:      blocks.Fields(a.target, []domain.Field{blocks.Entity(), blocks.Required(aclBody)}),
			Scopes:      blocks.StorageFullControl,
			DocsURL:     blocks.StorageDocs(a.resource, "update"),
		}),
	}
}

var _ = aclCollection{
	resource: "bucketAccessControls",
	noun:     "Bucket ACL",
	path:     "b/{bucket}/acl",
	target:   []domain.Field{blocks.Bucket(), blocks.UserProject()},
}.register()

var _ = aclCollection{
	resource:  "defaultObjectAccessControls",
	noun:      "Default Object ACL",
	path:      "b/{bucket}/defaultObjectAcl",
	target:    []domain.Field{blocks.Bucket(), blocks.UserProject()},
	listExtra: blocks.MetagenerationPreconditions(),
}.register()

var _ = aclCollection{
	resource: "objectAccessControls",
	noun:     "Object ACL",
	path:     "b/{bucket}/o/{object}/acl",
	target:   []domain.Field{blocks.Bucket(), blocks.Object(), blocks.Generation(), blocks.UserProject()},
}.register()
