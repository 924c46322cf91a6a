package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var cacheID = blocks.PathString("anywhereCacheId", "The ID of the Anywhere Cache instance, usually the zone it lives in.")

// cacheAction declares one of the state transitions (pause, resume, disable).
func cacheAction(action, name, desc string) domain.Block {
	return catalog.Register(domain.Block{
		ID:          "storage.anywhereCaches." + action,
		Name:        name,
		Description: desc,
		HTTPMethod:  http.MethodPost,
		Path:        "b/{bucket}/anywhereCaches/{anywhereCacheId}/" + action,
		Fields:      []domain.Field{blocks.Bucket(), cacheID},
		Scopes:      blocks.StorageWrite,
		DocsURL:     blocks.StorageDocs("anywhereCaches", action),
	})
}

var _ = catalog.Register(domain.Block{
	ID:          "storage.anywhereCaches.insert",
	Name:        "Create Anywhere Cache",
	Description: "Creates an Anywhere Cache instance. Returns a long-running operation.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/anywhereCaches",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Required(blocks.Body("AnywhereCache resource, e.g. {\"zone\": \"us-central1-a\", \"ttl\": \"86400s\", \"admissionPolicy\": \"admit-on-first-miss\"}.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("anywhereCaches", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.anywhereCaches.get",
	Name:        "Get Anywhere Cache",
	Description: "Returns the metadata of an Anywhere Cache instance.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/anywhereCaches/{anywhereCacheId}",
	Fields:      []domain.Field{blocks.Bucket(), cacheID},
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("anywhereCaches", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.anywhereCaches.list",
	Name:        "List Anywhere Caches",
	Description: "Returns a list of Anywhere Cache instances of the bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/anywhereCaches",
	Fields:      blocks.Fields([]domain.Field{blocks.Bucket()}, blocks.PageSizePaging()),
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("anywhereCaches", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.anywhereCaches.update",
	Name:        "Update Anywhere Cache",
	Description: "Updates the config (ttl and admissionPolicy) of an Anywhere Cache instance. Returns a long-running operation.",
	HTTPMethod:  http.MethodPatch,
	Path:        "b/{bucket}/anywhereCaches/{anywhereCacheId}",
	Fields: []domain.Field{
		blocks.Bucket(),
		cacheID,
		blocks.Required(blocks.Body("AnywhereCache fields to update, e.g. {\"ttl\": \"3600s\"}.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("anywhereCaches", "update"),
})

var _ = cacheAction("pause", "Pause Anywhere Cache", "Pauses an Anywhere Cache instance.")

var _ = cacheAction("resume", "Resume Anywhere Cache", "Resumes a paused or disabled Anywhere Cache instance.")

var _ = cacheAction("disable", "Disable Anywhere Cache", "Disables an Anywhere Cache instance. It can be resumed within the grace period.")
