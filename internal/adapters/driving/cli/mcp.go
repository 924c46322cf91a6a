package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can call blocks.

Every block becomes a tool named after its ID with dots replaced by
underscores, e.g. storage_buckets_list. The list_blocks and describe_block
tools explore the catalog, and gcpblocks:// resources expose services,
block definitions and recent history.

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  gcpblocks mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  gcpblocks mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "gcpblocks": {
        "command": "/path/to/gcpblocks",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Registry: registry,
		Invoker:  invoker,
		History:  historyService,
	})
	if err != nil {
		return err
	}

	stop := watchConfig(cmd.Context())
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
