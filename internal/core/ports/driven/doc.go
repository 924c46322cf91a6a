// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//   - TokenProviderFactory: Builds token providers from auth settings
//   - HTTPTransport: Issues built API requests
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Invocation history. Without it, history commands report unavailable.
//   - ConfigWatcher: Hot reload of the configuration file.
//   - GCPClients: Generated API clients for the credential check.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
