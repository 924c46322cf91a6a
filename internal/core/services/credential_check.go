package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// Ensure CredentialCheckService implements the interface.
var _ driving.CredentialChecker = (*CredentialCheckService)(nil)

// CredentialCheckService verifies the configured credential against the
// Resource Manager and Storage APIs.
type CredentialCheckService struct {
	settings    driving.SettingsService
	credentials *CredentialResolver
	clients     driven.GCPClients
}

// NewCredentialCheckService creates a credential checker.
func NewCredentialCheckService(
	settings driving.SettingsService,
	credentials *CredentialResolver,
	clients driven.GCPClients,
) *CredentialCheckService {
	return &CredentialCheckService{settings: settings, credentials: credentials, clients: clients}
}

// Check mints a read-only token and uses it to read the configured project
// and its Storage service agent.
func (s *CredentialCheckService) Check(ctx context.Context) (*domain.CredentialReport, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if settings.Project.ID == "" {
		return nil, fmt.Errorf("%w: project.id is not set", domain.ErrInvalidInput)
	}

	token, err := s.credentials.Resolve(ctx, settings.Auth, []string{blocks.ScopeCloudPlatformReadOnly})
	if err != nil {
		return nil, err
	}

	report := &domain.CredentialReport{
		Source:      token.Source,
		ProjectID:   settings.Project.ID,
		TokenExpiry: token.Expiry,
	}

	project, err := s.clients.GetProject(ctx, token, settings.Project.ID)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", settings.Project.ID, err)
	}
	report.ProjectName = project.DisplayName
	report.ProjectState = project.State

	account, err := s.clients.GetStorageServiceAccount(ctx, token, settings.Project.ID)
	if err != nil {
		return nil, fmt.Errorf("get storage service account: %w", err)
	}
	report.StorageServiceAccount = account

	logger.WithFields(logger.Fields{
		"gcpblocks.credential": report.Source,
		"gcpblocks.project":    report.ProjectID,
	}).Debug("credential check passed")

	return report, nil
}
