// Package domain defines the core business entities for gcpblocks.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block: A declarative Google Cloud REST operation and its input fields
//   - AppSettings: Process-wide project and credential configuration
//   - APIRequest / APIResponse: The wire view of one call
//   - OutputEvent: What a block publishes after a successful call
//   - Invocation: The history record of one run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
