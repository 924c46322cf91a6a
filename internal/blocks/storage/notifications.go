package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var notificationID = blocks.PathString("notification", "ID of the notification configuration.")

var _ = catalog.Register(domain.Block{
	ID:          "storage.notifications.delete",
	Name:        "Delete Notification",
	Description: "Permanently deletes a notification subscription.",
	HTTPMethod:  http.MethodDelete,
	Path:        "b/{bucket}/notificationConfigs/{notification}",
	Fields:      []domain.Field{blocks.Bucket(), notificationID, blocks.UserProject()},
	Scopes:      blocks.StorageWrite,
	DocsURL:     blocks.StorageDocs("notifications", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.notifications.get",
	Name:        "Get Notification",
	Description: "View a notification configuration.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/notificationConfigs/{notification}",
	Fields:      []domain.Field{blocks.Bucket(), notificationID, blocks.UserProject()},
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("notifications", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.notifications.insert",
	Name:        "Create Notification",
	Description: "Creates a Pub/Sub notification subscription for a given bucket.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/notificationConfigs",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.UserProject(),
		blocks.Required(blocks.Body("Notification resource, e.g. {\"topic\": \"//pubsub.googleapis.com/projects/p/topics/t\", \"payload_format\": \"JSON_API_V1\"}.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("notifications", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.notifications.list",
	Name:        "List Notifications",
	Description: "Retrieves a list of notification subscriptions for a given bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/notificationConfigs",
	Fields:      []domain.Field{blocks.Bucket(), blocks.UserProject()},
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("notifications", "list"),
})
