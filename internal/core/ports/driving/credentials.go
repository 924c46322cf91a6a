package driving

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// CredentialChecker verifies the configured credential against live APIs.
type CredentialChecker interface {
	// Check mints a token and calls Resource Manager and Storage with it.
	Check(ctx context.Context) (*domain.CredentialReport, error)
}
