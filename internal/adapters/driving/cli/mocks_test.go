package cli

import (
	"bytes"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/services"
)

func testRegistry() *services.BlockRegistry {
	return services.NewBlockRegistry([]domain.Block{
		{
			ID:         "storage.buckets.list",
			Service:    domain.ServiceStorage,
			Name:       "List Buckets",
			HTTPMethod: "GET",
			Path:       "b",
			Fields: []domain.Field{
				{Key: "project", Location: domain.LocationQuery, Type: domain.FieldString, Required: true, DefaultsToProject: true},
				{Key: "projection", Location: domain.LocationQuery, Type: domain.FieldString, Enum: []string{"full", "noAcl"}},
			},
			Scopes:  []string{"https://www.googleapis.com/auth/devstorage.read_only"},
			DocsURL: "https://cloud.google.com/storage/docs/json_api/v1/buckets/list",
		},
		{
			ID:         "storage.objects.get",
			Service:    domain.ServiceStorage,
			Name:       "Get Object",
			HTTPMethod: "GET",
			Path:       "b/{bucket}/o/{object}",
			Fields: []domain.Field{
				{Key: "bucket", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
				{Key: "object", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
				{Key: "alt", Location: domain.LocationQuery, Type: domain.FieldString, Default: "json"},
			},
		},
		{
			ID:          "resourcemanager.projects.get",
			Service:     domain.ServiceResourceManager,
			Name:        "Get Project",
			Description: "Retrieves the project identified by name.",
			HTTPMethod:  "GET",
			Path:        "v3/{+name}",
			Fields: []domain.Field{
				{Key: "name", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
			},
		},
	})
}

// mockInvoker implements driving.BlockInvoker.
type mockInvoker struct {
	event      *domain.OutputEvent
	request    *domain.APIRequest
	err        error
	lastBlock  string
	lastInputs map[string]any
}

func (m *mockInvoker) Invoke(_ context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error) {
	m.lastBlock = blockID
	m.lastInputs = inputs
	if m.err != nil {
		return nil, m.err
	}
	if m.event != nil {
		return m.event, nil
	}
	return &domain.OutputEvent{
		InvocationID: "inv-1",
		BlockID:      blockID,
		StatusCode:   200,
		Data:         map[string]any{"kind": "storage#buckets"},
	}, nil
}

func (m *mockInvoker) Preview(_ context.Context, blockID string, inputs map[string]any) (*domain.APIRequest, error) {
	m.lastBlock = blockID
	m.lastInputs = inputs
	if m.err != nil {
		return nil, m.err
	}
	return m.request, nil
}

// mockSettings implements driving.SettingsService.
type mockSettings struct {
	settings    domain.AppSettings
	validateErr error
	setErr      error
	set         map[string]string
}

func newMockSettings() *mockSettings {
	s := domain.DefaultAppSettings()
	s.Project.ID = "my-project"
	return &mockSettings{settings: s, set: map[string]string{}}
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Save(s *domain.AppSettings) error {
	m.settings = *s
	return nil
}

func (m *mockSettings) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettings) SetAccessToken(token string) error {
	m.settings.Auth.AccessToken = token
	return nil
}

func (m *mockSettings) SetServiceAccountKey(keyJSON string) error {
	m.settings.Auth.ServiceAccountKey = keyJSON
	return nil
}

func (m *mockSettings) Validate() error {
	return m.validateErr
}

func (m *mockSettings) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettings) Keys() []string {
	keys := []string{"project.id", "http.timeout", "history.enabled"}
	sort.Strings(keys)
	return keys
}

// mockHistory implements driving.HistoryService.
type mockHistory struct {
	invocations []domain.Invocation
	pruneDays   int
}

func (m *mockHistory) List(_ context.Context, limit int) ([]domain.Invocation, error) {
	if limit > 0 && limit < len(m.invocations) {
		return m.invocations[:limit], nil
	}
	return m.invocations, nil
}

func (m *mockHistory) Get(_ context.Context, id string) (*domain.Invocation, error) {
	for i := range m.invocations {
		if m.invocations[i].ID == id {
			return &m.invocations[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistory) Prune(_ context.Context, days int) (int, error) {
	m.pruneDays = days
	return 2, nil
}

// mockChecker implements driving.CredentialChecker.
type mockChecker struct {
	report *domain.CredentialReport
	err    error
}

func (m *mockChecker) Check(_ context.Context) (*domain.CredentialReport, error) {
	return m.report, m.err
}

type testServices struct {
	invoker  *mockInvoker
	settings *mockSettings
	history  *mockHistory
	checker  *mockChecker
}

// setupTestServices installs mocks and returns them with a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		invoker:  &mockInvoker{},
		settings: newMockSettings(),
		history: &mockHistory{invocations: []domain.Invocation{
			{
				ID: "inv-2", BlockID: "storage.objects.get", Status: domain.InvocationFailed, StatusCode: 404,
				StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), Duration: 30 * time.Millisecond,
			},
			{
				ID: "inv-1", BlockID: "storage.buckets.list", Status: domain.InvocationSucceeded, StatusCode: 200,
				StartedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), Duration: 80 * time.Millisecond,
			},
		}},
		checker: &mockChecker{report: &domain.CredentialReport{
			Source:                domain.CredentialServiceAccountKey,
			ProjectID:             "my-project",
			ProjectName:           "My Project",
			ProjectState:          "ACTIVE",
			StorageServiceAccount: "service-123@gs-project-accounts.iam.gserviceaccount.com",
		}},
	}

	Configure(&Services{
		Registry:    testRegistry(),
		Invoker:     ts.invoker,
		Settings:    ts.settings,
		History:     ts.history,
		Credentials: ts.checker,
	})

	return ts, func() { Configure(nil) }
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithInput(t, "", args...)
	return out, err
}

// executeWithInput runs the root command with stdin set to input and
// returns standard output and standard error separately.
func executeWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(bytes.NewBufferString(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
