package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the block catalog over HTTP",
	Long: `Start a JSON HTTP API over the block catalog.

Routes:
  GET  /healthz
  GET  /v1/services
  GET  /v1/blocks?service=&filter=
  GET  /v1/blocks/{id}
  POST /v1/blocks/{id}:invoke   {"inputs": {...}, "media_base64": "..."}
  POST /v1/blocks/{id}:preview
  GET  /v1/history?limit=
  GET  /v1/history/{id}

Edits to config.toml are picked up without a restart.`,
	Example: `  gcpblocks serve --addr 127.0.0.1:8080
  gcpblocks serve --cors-origin http://localhost:3000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	serveCmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origin (repeatable)")
	serveCmd.Flags().Int64("max-body", 32<<20, "maximum request body size in bytes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requireRegistry(); err != nil {
		return err
	}
	addr, _ := cmd.Flags().GetString("addr")
	origins, _ := cmd.Flags().GetStringSlice("cors-origin")
	maxBody, _ := cmd.Flags().GetInt64("max-body")

	server, err := httpapi.NewServer(&httpapi.Ports{
		Registry: registry,
		Invoker:  invoker,
		History:  historyService,
	}, httpapi.Options{AllowedOrigins: origins, MaxBodyBytes: maxBody})
	if err != nil {
		return err
	}

	stop := watchConfig(cmd.Context())
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", addr)
	logger.WithFields(logger.Fields{"addr": addr, "cors": origins}).Info("http api started")
	return server.Run(cmd.Context(), addr)
}
