package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// mockTokenProvider returns a fixed token and records requested scopes.
type mockTokenProvider struct {
	source domain.CredentialSource
	token  string
	err    error

	mu     sync.Mutex
	scopes [][]string
}

func (m *mockTokenProvider) Token(_ context.Context, scopes []string) (*domain.AccessToken, error) {
	m.mu.Lock()
	m.scopes = append(m.scopes, scopes)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AccessToken{
		Value:  m.token,
		Type:   "Bearer",
		Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockTokenProvider) Source() domain.CredentialSource {
	return m.source
}

// mockTokenFactory hands out a provider keyed by the settings' source.
type mockTokenFactory struct {
	providers map[domain.CredentialSource]*mockTokenProvider
	calls     int
}

func newMockTokenFactory() *mockTokenFactory {
	return &mockTokenFactory{providers: map[domain.CredentialSource]*mockTokenProvider{
		domain.CredentialAccessToken:       {source: domain.CredentialAccessToken, token: "static-token"},
		domain.CredentialServiceAccountKey: {source: domain.CredentialServiceAccountKey, token: "minted-token"},
		domain.CredentialDefault:           {source: domain.CredentialDefault, token: "adc-token"},
	}}
}

func (m *mockTokenFactory) ForSettings(auth domain.AuthSettings) (driven.TokenProvider, error) {
	m.calls++
	p, ok := m.providers[auth.Source()]
	if !ok {
		return nil, domain.ErrMissingCredentials
	}
	return p, nil
}

// mockTransport captures the request and replies with a canned response.
type mockTransport struct {
	resp *domain.APIResponse
	err  error

	requests []*domain.APIRequest
	tokens   []*domain.AccessToken
}

func (m *mockTransport) Do(_ context.Context, req *domain.APIRequest, token *domain.AccessToken) (*domain.APIResponse, error) {
	m.requests = append(m.requests, req)
	m.tokens = append(m.tokens, token)
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockGCPClients answers the credential check lookups.
type mockGCPClients struct {
	project    *driven.ProjectInfo
	account    string
	projectErr error
	accountErr error
}

func (m *mockGCPClients) GetProject(_ context.Context, _ *domain.AccessToken, projectID string) (*driven.ProjectInfo, error) {
	if m.projectErr != nil {
		return nil, m.projectErr
	}
	p := *m.project
	p.ProjectID = projectID
	return &p, nil
}

func (m *mockGCPClients) GetStorageServiceAccount(_ context.Context, _ *domain.AccessToken, _ string) (string, error) {
	if m.accountErr != nil {
		return "", m.accountErr
	}
	return m.account, nil
}

// failingHistoryStore rejects every write.
type failingHistoryStore struct{}

func (failingHistoryStore) Record(context.Context, domain.Invocation) error {
	return errors.New("disk full")
}

func (failingHistoryStore) Get(context.Context, string) (*domain.Invocation, error) {
	return nil, domain.ErrNotFound
}

func (failingHistoryStore) List(context.Context, int) ([]domain.Invocation, error) {
	return nil, nil
}

func (failingHistoryStore) Prune(context.Context, time.Time) (int, error) {
	return 0, nil
}
