package storage

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var bucketBody = blocks.Body("Bucket resource, e.g. {\"name\": \"my-bucket\", \"location\": \"EU\", \"storageClass\": \"STANDARD\"}.")

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.delete",
	Name:        "Delete Bucket",
	Description: "Deletes an empty bucket. Deletions are permanent unless soft delete is enabled on the bucket.",
	HTTPMethod:  http.MethodDelete,
	Path:        "b/{bucket}",
	Fields: blocks.Fields(
		[]domain.Field{blocks.Bucket(), blocks.UserProject()},
		blocks.MetagenerationPreconditions(),
	),
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("buckets", "delete"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.get",
	Name:        "Get Bucket",
	Description: "Returns metadata for the specified bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.Generation(),
			blocks.QueryBool("softDeleted", "If true, return the soft-deleted version of this bucket. Requires generation."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.MetagenerationPreconditions(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("buckets", "get"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.getIamPolicy",
	Name:        "Get Bucket IAM Policy",
	Description: "Returns an IAM policy for the specified bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/iam",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.QueryInt("optionsRequestedPolicyVersion", "The IAM policy format version to be returned. Required to be 3 or greater for conditional bindings."),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("buckets", "getIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.getStorageLayout",
	Name:        "Get Bucket Storage Layout",
	Description: "Returns the storage layout configuration for the specified bucket.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/storageLayout",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.QueryString("prefix", "An optional prefix used for permission check."),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("buckets", "getStorageLayout"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.insert",
	Name:        "Create Bucket",
	Description: "Creates a new bucket in the configured project unless another project is given.",
	HTTPMethod:  http.MethodPost,
	Path:        "b",
	Fields: []domain.Field{
		blocks.QueryProject(),
		blocks.QueryBool("enableObjectRetention", "When set to true, object retention is enabled for this bucket."),
		blocks.PredefinedBucketACL(),
		blocks.PredefinedDefaultObjectACL(),
		blocks.Projection(),
		blocks.UserProject(),
		blocks.Required(bucketBody),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("buckets", "insert"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.list",
	Name:        "List Buckets",
	Description: "Retrieves a list of buckets for a given project.",
	HTTPMethod:  http.MethodGet,
	Path:        "b",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.QueryProject(),
			blocks.QueryString("prefix", "Filter results to buckets whose names begin with this prefix."),
			blocks.QueryBool("softDeleted", "If true, only soft-deleted bucket versions will be returned."),
			blocks.QueryBool("returnPartialSuccess", "If true, return a list of unreachable buckets along with the reachable ones."),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.StoragePaging(),
	),
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("buckets", "list"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.lockRetentionPolicy",
	Name:        "Lock Bucket Retention Policy",
	Description: "Locks retention policy on a bucket. This action is permanent.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/lockRetentionPolicy",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Required(blocks.QueryInt("ifMetagenerationMatch",
			"Makes the operation conditional on whether the bucket's current metageneration matches the given value.")),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("buckets", "lockRetentionPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.patch",
	Name:        "Patch Bucket",
	Description: "Patches a bucket. Changes to the bucket are readable immediately after writing.",
	HTTPMethod:  http.MethodPatch,
	Path:        "b/{bucket}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.PredefinedBucketACL(),
			blocks.PredefinedDefaultObjectACL(),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.MetagenerationPreconditions(),
		[]domain.Field{blocks.Required(bucketBody)},
	),
	Scopes:  blocks.StorageFullControl,
	DocsURL: blocks.StorageDocs("buckets", "patch"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.restore",
	Name:        "Restore Bucket",
	Description: "Restores a soft-deleted bucket.",
	HTTPMethod:  http.MethodPost,
	Path:        "b/{bucket}/restore",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Required(blocks.Generation()),
		blocks.Projection(),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageWrite,
	DocsURL: blocks.StorageDocs("buckets", "restore"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.setIamPolicy",
	Name:        "Set Bucket IAM Policy",
	Description: "Updates an IAM policy for the specified bucket.",
	HTTPMethod:  http.MethodPut,
	Path:        "b/{bucket}/iam",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.UserProject(),
		blocks.Required(blocks.Body("The complete Policy resource, e.g. {\"bindings\": [{\"role\": \"roles/storage.objectViewer\", \"members\": [\"allUsers\"]}]}.")),
	},
	Scopes:  blocks.StorageFullControl,
	DocsURL: blocks.StorageDocs("buckets", "setIamPolicy"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.testIamPermissions",
	Name:        "Test Bucket IAM Permissions",
	Description: "Tests a set of permissions on the given bucket to see which, if any, are held by the caller.",
	HTTPMethod:  http.MethodGet,
	Path:        "b/{bucket}/iam/testPermissions",
	Fields: []domain.Field{
		blocks.Bucket(),
		blocks.Permissions(),
		blocks.UserProject(),
	},
	Scopes:  blocks.StorageRead,
	DocsURL: blocks.StorageDocs("buckets", "testIamPermissions"),
})

var _ = catalog.Register(domain.Block{
	ID:          "storage.buckets.update",
	Name:        "Update Bucket",
	Description: "Updates a bucket, replacing all writable metadata.",
	HTTPMethod:  http.MethodPut,
	Path:        "b/{bucket}",
	Fields: blocks.Fields(
		[]domain.Field{
			blocks.Bucket(),
			blocks.PredefinedBucketACL(),
			blocks.PredefinedDefaultObjectACL(),
			blocks.Projection(),
			blocks.UserProject(),
		},
		blocks.MetagenerationPreconditions(),
		[]domain.Field{blocks.Required(bucketBody)},
	),
	Scopes:  blocks.StorageFullControl,
	DocsURL: blocks.StorageDocs("buckets", "update"),
})
