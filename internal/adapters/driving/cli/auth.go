package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var authCheckJSON bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect the configured credential",
}

var authCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the credential against Google Cloud",
	Long: `Mint a token from the configured credential and use it to read the
configured project from Resource Manager and the project's Cloud Storage
service agent.`,
	Args: cobra.NoArgs,
	RunE: runAuthCheck,
}

func init() {
	authCheckCmd.Flags().BoolVar(&authCheckJSON, "json", false, "output as JSON")
	authCmd.AddCommand(authCheckCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthCheck(cmd *cobra.Command, _ []string) error {
	if credentialChecker == nil {
		return errors.New("credential checker not configured")
	}

	report, err := credentialChecker.Check(cmd.Context())
	if err != nil {
		return err
	}

	if authCheckJSON {
		return printJSON(cmd, report)
	}

	cmd.Printf("Credential: %s\n", report.Source.Description())
	cmd.Printf("Project:    %s", report.ProjectID)
	if report.ProjectName != "" {
		cmd.Printf(" (%s)", report.ProjectName)
	}
	cmd.Println()
	if report.ProjectState != "" {
		cmd.Printf("State:      %s\n", report.ProjectState)
	}
	if report.StorageServiceAccount != "" {
		cmd.Printf("Storage:    %s\n", report.StorageServiceAccount)
	}
	if !report.TokenExpiry.IsZero() {
		cmd.Printf("Expires:    %s\n", report.TokenExpiry.Local().Format(time.RFC3339))
	}
	cmd.Println("Credential OK.")
	return nil
}
