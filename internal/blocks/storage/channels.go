package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var _ = catalog.Register(domain.Block{
	ID:          "storage.channels.stop",
	Name:        "Stop Channel",
	Description: "Stop watching resources through this channel.",
	HTTPMethod:  http.MethodPost,
	Path:        "channels/stop",
	Fields: []domain.Field{
		blocks.Required(blocks.Body("Channel resource returned by watchAll, e.g. {\"id\": \"uuid\", \"resourceId\": \"abc\"}.")),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("channels", "stop"),
})
