package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for gcpblocks resources.
	uriScheme = "gcpblocks://"

	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "services",
		Name:        "services",
		Description: "Supported Google Cloud services and their block counts",
		MIMEType:    "application/json",
	}, s.handleServicesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "blocks/{blockId}",
		Name:        "block",
		Description: "Definition of a single block",
		MIMEType:    "application/json",
	}, s.handleBlockResource)

	if s.ports.History != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "history",
			Name:        "history",
			Description: "Most recent block invocations",
			MIMEType:    "application/json",
		}, s.handleHistoryResource)
	}
}

// handleServicesResource returns the service summaries.
func (s *Server) handleServicesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Registry.Services())
}

// handleBlockResource returns one block definition.
func (s *Server) handleBlockResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractBlockID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	block, err := s.ports.Registry.Get(id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, block)
}

// handleHistoryResource returns recent invocations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	list, err := s.ports.History.List(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return jsonResource(req.Params.URI, list)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractBlockID extracts the block ID from a URI like gcpblocks://blocks/{blockId}.
func extractBlockID(uri string) string {
	const prefix = uriScheme + "blocks/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

