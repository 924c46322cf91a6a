package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

var (
	blocksService string
	blocksFilter  string
	blocksJSON    bool
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Browse the block catalog",
	Long:  `List and inspect the Resource Manager and Cloud Storage blocks.`,
}

var blocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blocks",
	Example: `  gcpblocks blocks list --service storage
  gcpblocks blocks list --filter iam`,
	Args: cobra.NoArgs,
	RunE: runBlocksList,
}

var blocksShowCmd = &cobra.Command{
	Use:   "show [block-id]",
	Short: "Show a block's inputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocksShow,
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List supported services",
	Args:  cobra.NoArgs,
	RunE:  runServices,
}

func init() {
	blocksListCmd.Flags().StringVarP(&blocksService, "service", "s", "", "only list blocks of this service")
	blocksListCmd.Flags().StringVarP(&blocksFilter, "filter", "f", "", "case-insensitive text filter")
	blocksListCmd.Flags().BoolVar(&blocksJSON, "json", false, "output as JSON")
	blocksShowCmd.Flags().BoolVar(&blocksJSON, "json", false, "output as JSON")

	blocksCmd.AddCommand(blocksListCmd)
	blocksCmd.AddCommand(blocksShowCmd)
	blocksCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(blocksCmd)
}

func runBlocksList(cmd *cobra.Command, _ []string) error {
	if err := requireRegistry(); err != nil {
		return err
	}

	svc := domain.Service(blocksService)
	if svc != "" && !svc.IsValid() {
		return fmt.Errorf("%w: unknown service %q", domain.ErrInvalidInput, blocksService)
	}

	list := registry.List(driving.BlockFilter{Service: svc, Term: blocksFilter})

	if blocksJSON {
		return printJSON(cmd, list)
	}

	if len(list) == 0 {
		cmd.Println("No blocks found.")
		return nil
	}

	width := 0
	for i := range list {
		width = max(width, len(list[i].ID))
	}
	for i := range list {
		cmd.Printf("  %-*s  %-6s %s\n", width, list[i].ID, list[i].HTTPMethod, list[i].Name)
	}
	cmd.Println()
	cmd.Printf("%d blocks\n", len(list))
	return nil
}

func runBlocksShow(cmd *cobra.Command, args []string) error {
	if err := requireRegistry(); err != nil {
		return err
	}

	block, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	if blocksJSON {
		return printJSON(cmd, block)
	}

	cmd.Println(block.ID)
	cmd.Println(strings.Repeat("=", len(block.ID)))
	cmd.Println()
	cmd.Printf("  Name:    %s\n", block.Name)
	cmd.Printf("  Service: %s\n", block.Service.Description())
	cmd.Printf("  Request: %s %s%s\n", block.HTTPMethod, block.Service.BaseURL(), block.Path)
	if block.Description != "" {
		cmd.Printf("  About:   %s\n", block.Description)
	}
	if block.DocsURL != "" {
		cmd.Printf("  Docs:    %s\n", block.DocsURL)
	}
	cmd.Printf("  Scopes:  %s\n", strings.Join(block.Scopes, ", "))
	cmd.Println()

	if len(block.Fields) == 0 {
		cmd.Println("No inputs.")
		return nil
	}

	cmd.Println("Inputs:")
	for _, f := range block.Fields {
		cmd.Printf("  %s\n", describeField(f))
		if f.Description != "" {
			cmd.Printf("      %s\n", f.Description)
		}
	}
	return nil
}

func describeField(f domain.Field) string {
	var tags []string
	tags = append(tags, string(f.Location), string(f.Type))
	if f.Required {
		tags = append(tags, "required")
	}
	if f.Repeated {
		tags = append(tags, "repeated")
	}
	if f.DefaultsToProject {
		tags = append(tags, "defaults to project")
	}
	if f.Default != nil {
		tags = append(tags, fmt.Sprintf("default %v", f.Default))
	}
	s := fmt.Sprintf("%s (%s)", f.Key, strings.Join(tags, ", "))
	if len(f.Enum) > 0 {
		s += " one of: " + strings.Join(f.Enum, ", ")
	}
	return s
}

func runServices(cmd *cobra.Command, _ []string) error {
	if err := requireRegistry(); err != nil {
		return err
	}

	for _, s := range registry.Services() {
		cmd.Printf("  %-16s %-28s %3d blocks  %s\n", s.Service, s.Description, s.BlockCount, s.BaseURL)
	}
	return nil
}
