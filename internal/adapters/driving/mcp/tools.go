package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// ListBlocksInput is the input schema for the list_blocks tool.
type ListBlocksInput struct {
	Service string `json:"service,omitempty" jsonschema:"restrict to one service: resourcemanager or storage"`
	Filter  string `json:"filter,omitempty" jsonschema:"case-insensitive text matched against ID, name and description"`
}

// ListBlocksOutput is the output schema for the list_blocks tool.
type ListBlocksOutput struct {
	Blocks []BlockSummary `json:"blocks"`
	Count  int            `json:"count"`
}

// BlockSummary describes one block and the tool that runs it.
type BlockSummary struct {
	ID          string `json:"id"`
	Tool        string `json:"tool"`
	Name        string `json:"name"`
	Method      string `json:"method"`
	Description string `json:"description,omitempty"`
}

// DescribeBlockInput is the input schema for the describe_block tool.
type DescribeBlockInput struct {
	ID string `json:"id" jsonschema:"block ID, e.g. storage.buckets.get"`
}

// DescribeBlockOutput is the output schema for the describe_block tool.
type DescribeBlockOutput struct {
	Block domain.Block `json:"block"`
	Tool  string       `json:"tool"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_blocks",
		Description: "List the Google Cloud API blocks that can be invoked as tools",
	}, s.handleListBlocks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "describe_block",
		Description: "Show the inputs, scopes and endpoint of one block",
	}, s.handleDescribeBlock)

	for _, b := range s.ports.Registry.List(driving.BlockFilter{}) {
		name := ToolName(b.ID)
		s.tools[name] = b.ID
		s.server.AddTool(&mcp.Tool{
			Name:        name,
			Title:       b.Name,
			Description: toolDescription(&b),
			InputSchema: InputSchema(&b),
		}, s.blockHandler(b.ID))
	}
}

// handleListBlocks handles the list_blocks tool invocation.
func (s *Server) handleListBlocks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListBlocksInput,
) (*mcp.CallToolResult, ListBlocksOutput, error) {
	svc := domain.Service(input.Service)
	if svc != "" && !svc.IsValid() {
		return nil, ListBlocksOutput{}, fmt.Errorf("%w: unknown service %q", domain.ErrInvalidInput, input.Service)
	}

	blocks := s.ports.Registry.List(driving.BlockFilter{Service: svc, Term: input.Filter})

	output := ListBlocksOutput{
		Blocks: make([]BlockSummary, len(blocks)),
		Count:  len(blocks),
	}
	for i := range blocks {
		output.Blocks[i] = BlockSummary{
			ID:          blocks[i].ID,
			Tool:        ToolName(blocks[i].ID),
			Name:        blocks[i].Name,
			Method:      blocks[i].HTTPMethod,
			Description: blocks[i].Description,
		}
	}
	return nil, output, nil
}

// handleDescribeBlock handles the describe_block tool invocation.
func (s *Server) handleDescribeBlock(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DescribeBlockInput,
) (*mcp.CallToolResult, DescribeBlockOutput, error) {
	block, err := s.ports.Registry.Get(input.ID)
	if err != nil {
		return nil, DescribeBlockOutput{}, err
	}
	return nil, DescribeBlockOutput{Block: *block, Tool: ToolName(block.ID)}, nil
}

// blockHandler returns the tool handler that invokes one block.
func (s *Server) blockHandler(blockID string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inputs := map[string]any{}
		if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &inputs); err != nil {
				return toolError(fmt.Errorf("%w: arguments must be a JSON object", domain.ErrInvalidInput)), nil
			}
		}

		event, err := s.ports.Invoker.Invoke(ctx, blockID, inputs)
		if err != nil {
			logger.WithFields(logger.Fields{"gcpblocks.block": blockID}).WithError(err).Debug("mcp tool call failed")
			return toolError(err), nil
		}

		data, err := json.MarshalIndent(event, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling output event: %w", err)
		}
		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
			StructuredContent: event,
		}, nil
	}
}

// toolError reports a failed call as a tool result so the model can see it.
func toolError(err error) *mcp.CallToolResult {
	content := []mcp.Content{&mcp.TextContent{Text: err.Error()}}
	if apiErr, ok := domain.AsAPIError(err); ok && len(apiErr.Body) > 0 {
		content = append(content, &mcp.TextContent{Text: string(apiErr.Body)})
	}
	return &mcp.CallToolResult{Content: content, IsError: true}
}
