// Package cli provides the cobra command tree for gcpblocks.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
	"github.com/custodia-labs/gcpblocks/internal/tracing"
)

// version is set at build time with -ldflags.
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Registry    driving.BlockRegistry
	Invoker     driving.BlockInvoker
	Settings    driving.SettingsService
	History     driving.HistoryService
	Credentials driving.CredentialChecker

	// ConfigWatcher, when set, lets long-running commands pick up edits
	// to the configuration file.
	ConfigWatcher driven.ConfigWatcher
	// Reload re-applies settings after the configuration file changed.
	Reload func()
	// Close releases resources held by the services.
	Close func() error
}

// Options are the global flags handed to the bootstrap function.
type Options struct {
	ConfigDir string
	DataDir   string
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	configDir  string
	dataDir    string
	verbose    bool
	logLevel   string
	logJSON    bool
	traceSpans bool

	bootstrap Bootstrap
	svcs      *Services

	registry          driving.BlockRegistry
	invoker           driving.BlockInvoker
	settingsService   driving.SettingsService
	historyService    driving.HistoryService
	credentialChecker driving.CredentialChecker
)

var rootCmd = &cobra.Command{
	Use:   "gcpblocks",
	Short: "Invoke Google Cloud REST operations as declarative blocks",
	Long: `gcpblocks exposes Cloud Resource Manager v3 and Cloud Storage v1 REST
methods as blocks. Each block declares its inputs, builds the request,
calls the API with the configured credential and prints the JSON response.

Credentials are read from ~/.gcpblocks/config.toml or the environment:
  GCPBLOCKS_ACCESS_TOKEN          short-lived bearer token
  GCPBLOCKS_SERVICE_ACCOUNT_KEY   service-account key JSON
  GOOGLE_APPLICATION_CREDENTIALS  path to a service-account key file`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.gcpblocks)")
	flags.StringVar(&dataDir, "data-dir", "", "history database directory (default ~/.gcpblocks/data)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	flags.BoolVar(&traceSpans, "trace", false, "print trace spans to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Configure installs already-built services, skipping the bootstrap.
func Configure(s *Services) {
	svcs = s
	if s == nil {
		registry, invoker, settingsService, historyService, credentialChecker = nil, nil, nil, nil, nil
		return
	}
	registry = s.Registry
	invoker = s.Invoker
	settingsService = s.Settings
	historyService = s.History
	credentialChecker = s.Credentials
}

// Execute runs the root command and releases resources afterwards.
func Execute(ctx context.Context) error {
	defer cleanup()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetJSON(logJSON)
	logger.SetOutput(cmd.ErrOrStderr())
	if logLevel != "" {
		if err := logger.SetLevel(logLevel); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := tracing.Options{Component: "gcpblocks"}
	if traceSpans {
		opts.Stdout = cmd.ErrOrStderr()
	}
	if err := tracing.Init(ctx, opts); err != nil {
		logger.Warn("tracing disabled: %v", err)
	}

	if svcs != nil || bootstrap == nil {
		return nil
	}
	s, err := bootstrap(ctx, Options{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	Configure(s)
	return nil
}

func cleanup() {
	if svcs != nil && svcs.Close != nil {
		if err := svcs.Close(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}
	tracing.Shutdown(context.Background())
}

func requireRegistry() error {
	if registry == nil {
		return errors.New("block registry not configured")
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}

// Main runs the CLI and exits non-zero on failure.
func Main(ctx context.Context) {
	rootCmd.SetOut(os.Stdout)
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
