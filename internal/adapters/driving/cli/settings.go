package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the project, credentials, HTTP client, rate limits
and history retention.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by its dotted key.

Run 'gcpblocks settings keys' for the list of keys.`,
	Example: `  gcpblocks settings set project.id my-project
  gcpblocks settings set rate_limits.storage.requests_per_second 5
  gcpblocks settings set http.timeout 30s`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store a short-lived access token",
	Long: `Store an access token, e.g. one minted by workload identity federation.
Without an argument the token is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsSetToken,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key [key-file]",
	Short: "Store a service-account key",
	Long:  `Store the contents of a service-account JSON key file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsSetTokenCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Project]")
	cmd.Printf("  ID: %s\n", valueOrUnset(settings.Project.ID))
	cmd.Println()

	cmd.Println("[Auth]")
	if source := settings.Auth.Source(); source != "" {
		cmd.Printf("  Active source: %s\n", source.Description())
	} else {
		cmd.Println("  Active source: (none)")
	}
	if settings.Auth.AccessToken != "" {
		cmd.Printf("  Access token: %s\n", maskSecret(settings.Auth.AccessToken))
	} else {
		cmd.Println("  Access token: (not set)")
	}
	switch {
	case settings.Auth.ServiceAccountKeyFile != "":
		cmd.Printf("  Service account key: %s\n", settings.Auth.ServiceAccountKeyFile)
	case settings.Auth.ServiceAccountKey != "":
		cmd.Printf("  Service account key: %s\n", keyEmail(settings.Auth.ServiceAccountKey))
	default:
		cmd.Println("  Service account key: (not set)")
	}
	cmd.Printf("  Default credentials: %s\n", yesNo(settings.Auth.UseDefaultCredentials))
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Timeout: %s\n", settings.HTTP.Timeout)
	cmd.Printf("  User agent: %s\n", settings.HTTP.UserAgent)
	cmd.Println()

	cmd.Println("[Rate Limits]")
	names := make([]string, 0, len(settings.RateLimits))
	for svc := range settings.RateLimits {
		names = append(names, string(svc))
	}
	sort.Strings(names)
	for _, svc := range names {
		rl := settings.RateLimits[domain.Service(svc)]
		cmd.Printf("  %s: %g req/s, burst %d\n", svc, rl.RequestsPerSecond, rl.Burst)
	}
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	if settings.History.RetentionDays > 0 {
		cmd.Printf("  Retention: %d days\n", settings.History.RetentionDays)
	} else {
		cmd.Println("  Retention: forever")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'gcpblocks settings set-key' or 'gcpblocks settings set-token' to configure credentials.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Printf("  %s\n", key)
	}
	return nil
}

func runSettingsSetToken(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		cmd.Print("Access token: ")
		token = readSecret(cmd)
		cmd.Println()
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: access token is empty", domain.ErrInvalidInput)
	}

	if err := settingsService.SetAccessToken(token); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	cmd.Println("Access token saved.")
	return nil
}

func runSettingsSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading key file: %w", err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: %s is not a JSON key file", domain.ErrInvalidInput, args[0])
	}

	if err := settingsService.SetServiceAccountKey(string(data)); err != nil {
		return fmt.Errorf("failed to store service account key: %w", err)
	}
	cmd.Printf("Service account key saved (%s).\n", keyEmail(string(data)))
	return nil
}

// readSecret reads a line without echo when attached to a terminal.
func readSecret(cmd *cobra.Command) string {
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// keyEmail returns the client_email of a service-account key.
func keyEmail(keyJSON string) string {
	var key struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal([]byte(keyJSON), &key); err != nil || key.ClientEmail == "" {
		return "configured"
	}
	return key.ClientEmail
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
