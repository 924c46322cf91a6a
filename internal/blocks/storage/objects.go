package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var objectBody = blocks.Body("Object resource, e.g. {\"contentType\": \"text/plain\", \"metadata\": {\"owner\": \"ops\"}}.")

// objectListing are the parameters shared by list and watchAll.
func objectListing() []domain.Field {
	return blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.QueryString("delimiter", "Returns results in a directory-like mode. Items contain only objects whose names do not contain delimiter after prefix."),
			blocks.QueryString("endOffset", "Filter results to objects whose names are lexicographically before endOffset."),
			blocks.QueryBool("includeTrailingDelimiter", "If true, objects that end in exactly one instance of delimiter are included in items as well as prefixes."),
			blocks.QueryString("prefix", "Filter results to objects whose names begin with this prefix."),
			blocks.QueryString("startOffset", "Filter results to objects whose names are lexicographically equal to or after startOffset."),
			blocks.QueryBool("versions", "If true, lists all versions of an object as distinct results."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.StoragePaging(),
	)
}

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.bulkRestore",
	Name:        "Bulk Restore Objects",
	Description: "Initiates a long-running bulk restore of soft-deleted objects.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/o/bulkRestore",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Required(blocks.Body("BulkRestoreObjectsRequest, e.g. {\"allowOverwrite\": false, \"matchGlobs\": [\"logs/**\"]}.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "bulkRestore"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.compose",
	Name:        "Compose Objects",
	Description: "Concatenates a list of existing objects into a new object in the same bucket.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{destinationBucket}/o/{destinationObject}/compose",
	Fields: []domain.Field{
		blocks.PathString("destinationBucket", "Name of the bucket containing the source objects. The destination object is stored in this bucket."),
		blocks.PathString("destinationObject", "Name of the new object."),
		blocks.PredefinedObjectACL("destinationPredefinedAcl"),
		blocks.QueryInt("ifGenerationMatch", "Makes the operation conditional on whether the object's current generation matches the given value."),
		blocks.QueryInt("ifMetagenerationMatch", "Makes the operation conditional on whether the object's current metageneration matches the given value."),
		blocks.QueryString("kmsKeyName", "Resource name of the Cloud KMS key used to encrypt the object."),
		blocks.UserProject(),
		blocks.Required(blocks.Body("ComposeRequest, e.g. {\"sourceObjects\": [{\"name\": \"a\"}, {\"name\": \"b\"}], \"destination\": {\"contentType\": \"text/plain\"}}.")),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "compose"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.copy",
	Name:        "Copy Object",
	Description: "Copies a source object to a destination object. Optionally overrides metadata.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{sourceBucket}/o/{sourceObject}/copyTo/b/{destinationBucket}/o/{destinationObject}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.PathString("sourceBucket", "Name of the bucket in which to find the source object."),
			blocks.PathString("sourceObject", "Name of the source object."),
			blocks.PathString("destinationBucket", "Name of the bucket in which to store the new object."),
			blocks.PathString("destinationObject", "Name of the new object."),
			blocks.QueryString("destinationKmsKeyName", "Resource name of the Cloud KMS key used to encrypt the object."),
			blocks.PredefinedObjectACL("destinationPredefinedAcl"),
			blocks.QueryInt("sourceGeneration", "If present, selects a specific revision of the source object."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		blocks.SourceGenerationPreconditions(),
		[]domain.Field{objectBody},
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "copy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.delete",
	Name:        "Delete Object",
	Description: "Deletes an object and its metadata, or a specific generation when versioning is enabled.",
	HTTPMethod:  http.MethodDelete,
	Path:        "b/{bucket}/o/{object}",
	Fields: blocks.Fields(
		[]domain.Field{blocks.Bucket(), blocks.Object(), blocks.Generation(), blocks.UserProject()},
		blocks.GenerationPreconditions(),
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.get",
	Name:        "Get Object",
	Description: "Retrieves object metadata, or the object data itself when alt is media.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/o/{object}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Object(),
			blocks.Generation(),
			blocks.QueryEnum("alt", "Data format for the response. Use media to download the object data.", "json", "media"),
			blocks.QueryBool("softDeleted", "If true, only soft-deleted object versions will be returned. Requires generation."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
	),
	Scopes:        blocks.StorageRead,
	MediaDownload: true,
	DocsURL:       blocks.StorageDocs("objects", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.getIamPolicy",
	Name:        "Get Object IAM Policy",
	Description: "Returns an IAM policy for the specified object.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/o/{object}/iam",
	Fields:      []domain.Field{blocks.Bucket(), blocks.Object(), blocks.Generation(), blocks.UserProject()},
	Scopes:      blocks.StorageRead,
	DocsURL:     blocks.StorageDocs("objects", "getIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.insert",
	Name:        "Upload Object",
	Description: "Stores a new object and metadata with a simple media upload.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/o",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Required(blocks.QueryString("name", "Name of the object.")),
			blocks.QueryString("contentEncoding", "If set, sets the contentEncoding property of the final object to this value."),
			blocks.QueryString("kmsKeyName", "Resource name of the Cloud KMS key used to encrypt the object."),
			blocks.PredefinedObjectACL("predefinedAcl"),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		[]domain.Field{
			blocks.Media("The object data."),
			blocks.MediaContentType(),
		},
	),
	Scopes:  blocks.StorageWrite,
	Upload:  true,
	DocsURL: blocks.StorageDocs("objects", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.list",
	Name:        "List Objects",
	Description: "Retrieves a list of objects matching the criteria.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/o",
	Fields: blocks.Fields(
		objectListing(),
		[]domain.Field{
			blocks.QueryString("matchGlob", "Filter results to objects and prefixes that match this glob pattern."),
			blocks.QueryBool("softDeleted", "If true, only soft-deleted object versions will be listed."),
			blocks.QueryBool("includeFoldersAsPrefixes", "Only applicable if delimiter is '/'. Includes folders and managed folders in prefixes."),
		},
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("objects", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.move",
	Name:        "Move Object",
	Description: "Moves the source object to the destination object in the same bucket.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/o/{sourceObject}/moveTo/o/{destinationObject}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.PathString("sourceObject", "Name of the source object."),
			blocks.PathString("destinationObject", "Name of the destination object."),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		blocks.SourceGenerationPreconditions(),
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "move"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.patch",
	Name:        "Patch Object",
	Description: "Patches an object's metadata.",
	HTTPMethod:  http.MethodPatch,
	Path:        "b/{bucket}/o/{object}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Object(),
			blocks.Generation(),
			blocks.QueryBool("overrideUnlockedRetention", "Must be true to remove the retention configuration, reduce its unlocked retention period, or change its mode from unlocked to locked."),
			blocks.PredefinedObjectACL("predefinedAcl"),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		[]domain.Field{blocks.Required(objectBody)},
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "patch"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.restore",
	Name:        "Restore Object",
	Description: "Restores a soft-deleted object.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/o/{object}/restore",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Object(),
			blocks.Required(blocks.Generation()),
			blocks.QueryBool("copySourceAcl", "If true, copies the source object's ACL; otherwise, uses the bucket's default object ACL."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "restore"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.rewrite",
	Name:        "Rewrite Object",
	Description: "Rewrites a source object to a destination object. Large objects may need several calls with rewriteToken.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{sourceBucket}/o/{sourceObject}/rewriteTo/b/{destinationBucket}/o/{destinationObject}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.PathString("sourceBucket", "Name of the bucket in which to find the source object."),
			blocks.PathString("sourceObject", "Name of the source object."),
			blocks.PathString("destinationBucket", "Name of the bucket in which to store the new object."),
			blocks.PathString("destinationObject", "Name of the new object."),
			blocks.QueryString("destinationKmsKeyName", "Resource name of the Cloud KMS key used to encrypt the object."),
			blocks.PredefinedObjectACL("destinationPredefinedAcl"),
			blocks.QueryInt("maxBytesRewrittenPerCall", "The maximum number of bytes that will be rewritten per rewrite request."),
			blocks.QueryString("rewriteToken", "Include this field from the previous rewrite response on each rewrite request after the first one."),
			blocks.QueryInt("sourceGeneration", "If present, selects a specific revision of the source object."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		blocks.SourceGenerationPreconditions(),
		[]domain.Field{objectBody},
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "rewrite"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.setIamPolicy",
	Name:        "Set Object IAM Policy",
	Description: "Updates an IAM policy for the specified object.",
	HTTPMethod:  http.MethodPut,
	Path:        "b/{bucket}/o/{object}/iam",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Object(),
		blocks.Generation(),
		blocks.UserProject(),
		blocks.Required(blocks.Body("The complete Policy resource.")),
	},
	Scopes:  blocks.StorageFullControl,
	DocsURL: blocks.StorageDocs("objects", "setIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.testIamPermissions",
	Name:        "Test Object IAM Permissions",
	Description: "Tests a set of permissions on the given object to see which, if any, are held by the caller.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/o/{object}/iam/testPermissions",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Object(),
		blocks.Generation(),
		blocks.Permissions(),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("objects", "testIamPermissions"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.update",
	Name:        "Update Object",
	Description: "Updates an object's metadata, replacing all writable metadata.",
	HTTPMethod:  http.MethodPut,
	Path:        "b/{bucket}/o/{object}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Object(),
			blocks.Generation(),
			blocks.QueryBool("overrideUnlockedRetention", "Must be true to remove the retention configuration or reduce its unlocked retention period."),
			blocks.PredefinedObjectACL("predefinedAcl"),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.GenerationPreconditions(),
		[]domain.Field{blocks.Required(objectBody)},
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("objects", "update"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.objects.watchAll",
	Name:        "Watch Objects",
	Description: "Watch for changes on all objects in a bucket through a notification channel.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/o/watch",
	Fields: blocks.Fields(
		objectListing(),
		[]domain.Field{
			blocks.Required(blocks.Body("Channel resource, e.g. {\"id\": \"uuid\", \"type\": \"web_hook\", \"address\": \"https://example.com/notify\"}.")),
		},
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("objects", "watchAll"),
})
