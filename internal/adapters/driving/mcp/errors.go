// Package mcp provides an MCP (Model Context Protocol) server adapter for gcpblocks.
// Every block in the catalog is published as a tool so AI assistants can call
// Google Cloud APIs with the configured credential.
package mcp

import "errors"

var (
	// ErrMissingRegistry is returned when the block registry is not provided.
	ErrMissingRegistry = errors.New("mcp: block registry is required")

	// ErrMissingInvoker is returned when the invoker is not provided.
	ErrMissingInvoker = errors.New("mcp: block invoker is required")
)
