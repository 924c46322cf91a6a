package blocks

import "github.com/custodia-labs/gcpblocks/internal/core/domain"

// Predefined ACL values shared by bucket and object methods.
var (
	predefinedACLs = []string{
		"authenticatedRead", "private", "projectPrivate", "publicRead", "publicReadWrite",
	}
	predefinedObjectACLs = []string{
		"authenticatedRead", "bucketOwnerFullControl", "bucketOwnerRead",
		"private", "projectPrivate", "publicRead",
	}
)

// UserProject bills requester-pays requests to the given project.
func UserProject() domain.Field {
	return QueryString("userProject", "The project to be billed for this request. Required for Requester Pays buckets.")
}

// Projection selects the set of properties to return.
func Projection() domain.Field {
	return QueryEnum("projection", "Set of properties to return.", "full", "noAcl")
}

// PredefinedBucketACL applies a predefined set of access controls to a bucket.
func PredefinedBucketACL() domain.Field {
	return QueryEnum("predefinedAcl", "Apply a predefined set of access controls to this bucket.", predefinedACLs...)
}

// PredefinedDefaultObjectACL applies default object access controls to a bucket.
func PredefinedDefaultObjectACL() domain.Field {
	return QueryEnum("predefinedDefaultObjectAcl",
		"Apply a predefined set of default object access controls to this bucket.", predefinedObjectACLs...)
}

// PredefinedObjectACL applies a predefined set of access controls to an object.
func PredefinedObjectACL(key string) domain.Field {
	return QueryEnum(key, "Apply a predefined set of access controls to the object.", predefinedObjectACLs...)
}

// MetagenerationPreconditions are the ifMetageneration(Not)Match pair.
func MetagenerationPreconditions() []domain.Field {
	return []domain.Field{
		QueryInt("ifMetagenerationMatch",
			"Makes the operation conditional on whether the current metageneration matches the given value."),
		QueryInt("ifMetagenerationNotMatch",
			"Makes the operation conditional on whether the current metageneration does not match the given value."),
	}
}

// GenerationPreconditions are the four generation and metageneration conditions.
func GenerationPreconditions() []domain.Field {
	return append([]domain.Field{
		QueryInt("ifGenerationMatch",
			"Makes the operation conditional on whether the object's current generation matches the given value. 0 matches no live object."),
		QueryInt("ifGenerationNotMatch",
			"Makes the operation conditional on whether the object's current generation does not match the given value."),
	}, MetagenerationPreconditions()...)
}

// SourceGenerationPreconditions are the ifSource* conditions of copy, rewrite and move.
func SourceGenerationPreconditions() []domain.Field {
	return []domain.Field{
		QueryInt("ifSourceGenerationMatch", "Makes the operation conditional on the source object's generation."),
		QueryInt("ifSourceGenerationNotMatch", "Makes the operation conditional on the source object's generation not matching."),
		QueryInt("ifSourceMetagenerationMatch", "Makes the operation conditional on the source object's metageneration."),
		QueryInt("ifSourceMetagenerationNotMatch", "Makes the operation conditional on the source object's metageneration not matching."),
	}
}

// StoragePaging are the maxResults and pageToken list parameters.
func StoragePaging() []domain.Field {
	return []domain.Field{
		QueryInt("maxResults", "Maximum number of items to return in a single page of responses."),
		QueryString("pageToken", "A previously-returned page token representing part of the larger set of results to view."),
	}
}

// PageSizePaging are the pageSize and pageToken list parameters.
func PageSizePaging() []domain.Field {
	return []domain.Field{
		QueryInt("pageSize", "Maximum number of items to return in a single page of responses."),
		QueryString("pageToken", "A previously-returned page token representing part of the larger set of results to view."),
	}
}

// Generation selects a specific object revision.
func Generation() domain.Field {
	return QueryInt("generation", "If present, selects a specific revision of this object (as opposed to the latest version, the default).")
}

// Permissions is the repeated permissions parameter of testIamPermissions.
func Permissions() domain.Field {
	return Required(QueryList("permissions", "Permissions to test."))
}

// Bucket is the bucket path parameter.
func Bucket() domain.Field {
	return PathString("bucket", "Name of a bucket.")
}

// Object is the object path parameter. Slashes in names are escaped.
func Object() domain.Field {
	return PathString("object", "Name of the object.")
}

// Entity is the ACL entity path parameter.
func Entity() domain.Field {
	return PathString("entity",
		"The entity holding the permission. Can be user-userId, user-emailAddress, group-groupId, group-emailAddress, allUsers, or allAuthenticatedUsers.")
}

// StorageDocs returns the reference URL of a Storage JSON API method.
func StorageDocs(resource, method string) string {
	return "https://cloud.google.com/storage/docs/json_api/v1/" + resource + "/" + method
}

// ResourceManagerDocs returns the reference URL of a Resource Manager v3 method.
func ResourceManagerDocs(resource, method string) string {
	return "https://cloud.google.com/resource-manager/reference/rest/v3/" + resource + "/" + method
}
