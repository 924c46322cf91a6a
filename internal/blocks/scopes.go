package blocks

// OAuth scopes used by Cloud Resource Manager and Cloud Storage.
const (
	ScopeCloudPlatform         = "https://www.googleapis.com/auth/cloud-platform"
	ScopeCloudPlatformReadOnly = "https://www.googleapis.com/auth/cloud-platform.read-only"
	ScopeDevstorageFullControl = "https://www.googleapis.com/auth/devstorage.full_control"
	ScopeDevstorageReadOnly    = "https://www.googleapis.com/auth/devstorage.read_only"
	ScopeDevstorageReadWrite   = "https://www.googleapis.com/auth/devstorage.read_write"
)

// Scope sets accepted by the API methods. Tokens are minted with the whole set.
var (
	// ResourceManagerRead is accepted by read-only Resource Manager methods.
	ResourceManagerRead = []string{ScopeCloudPlatform, ScopeCloudPlatformReadOnly}

	// ResourceManagerWrite is required by mutating Resource Manager methods.
	ResourceManagerWrite = []string{ScopeCloudPlatform}

	// StorageRead is accepted by read-only Storage methods.
	StorageRead = []string{
		ScopeCloudPlatform,
		ScopeCloudPlatformReadOnly,
		ScopeDevstorageFullControl,
		ScopeDevstorageReadOnly,
		ScopeDevstorageReadWrite,
	}

	// StorageWrite is accepted by methods that change buckets or objects.
	StorageWrite = []string{ScopeCloudPlatform, ScopeDevstorageFullControl, ScopeDevstorageReadWrite}

	// StorageFullControl is required for ACL and IAM management.
	StorageFullControl = []string{ScopeCloudPlatform, ScopeDevstorageFullControl}

	// StorageAdmin is required for project-level resources such as HMAC keys.
	StorageAdmin = []string{ScopeCloudPlatform}

	// StorageAdminRead is accepted by read-only project-level methods.
	StorageAdminRead = []string{ScopeCloudPlatform, ScopeCloudPlatformReadOnly}
)
