package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func newTestServer(t *testing.T, invoker *mockInvoker) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Registry: testRegistry(), Invoker: invoker})
	require.NoError(t, err)
	return server
}

func callRequest(args string) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)}}
}

func TestServer_handleListBlocks(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockInvoker{})

	t.Run("all blocks", func(t *testing.T) {
		_, output, err := server.handleListBlocks(ctx, nil, ListBlocksInput{})
		require.NoError(t, err)
		assert.Equal(t, 3, output.Count)
		assert.Equal(t, "resourcemanager.projects.get", output.Blocks[0].ID)
		assert.Equal(t, "resourcemanager_projects_get", output.Blocks[0].Tool)
	})

	t.Run("filtered by service and term", func(t *testing.T) {
		_, output, err := server.handleListBlocks(ctx, nil, ListBlocksInput{Service: "storage", Filter: "upload"})
		require.NoError(t, err)
		require.Equal(t, 1, output.Count)
		assert.Equal(t, "storage.objects.insert", output.Blocks[0].ID)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, _, err := server.handleListBlocks(ctx, nil, ListBlocksInput{Service: "compute"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleDescribeBlock(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockInvoker{})

	_, output, err := server.handleDescribeBlock(ctx, nil, DescribeBlockInput{ID: "storage.objects.insert"})
	require.NoError(t, err)
	assert.Equal(t, "storage_objects_insert", output.Tool)
	assert.True(t, output.Block.Upload)

	_, _, err = server.handleDescribeBlock(ctx, nil, DescribeBlockInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownBlock)
}

func TestServer_blockHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("no arguments", func(t *testing.T) {
		invoker := &mockInvoker{}
		server := newTestServer(t, invoker)

		result, err := server.blockHandler("storage.buckets.list")(ctx, &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{}})
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Empty(t, invoker.lastInputs)
		assert.NotNil(t, result.StructuredContent)
	})

	t.Run("bad arguments become a tool error", func(t *testing.T) {
		server := newTestServer(t, &mockInvoker{})

		result, err := server.blockHandler("storage.buckets.list")(ctx, callRequest(`[1]`))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("upstream error includes the response body", func(t *testing.T) {
		apiErr := domain.NewAPIError("GET", "https://storage.googleapis.com/storage/v1/b", 403,
			[]byte(`{"error":{"message":"denied"}}`))
		server := newTestServer(t, &mockInvoker{err: fmt.Errorf("invoke: %w", apiErr)})

		result, err := server.blockHandler("storage.buckets.list")(ctx, callRequest(`{}`))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		require.Len(t, result.Content, 2)
		assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "403")
		assert.Contains(t, result.Content[1].(*mcp.TextContent).Text, "denied")
	})
}
