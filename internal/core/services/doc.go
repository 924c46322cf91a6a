// Package services implements the driving port interfaces.
//
// BlockRegistry answers catalog queries. InvokerService validates inputs,
// builds the request, resolves a credential and sends the call through the
// driven HTTPTransport, recording each run in the optional HistoryStore.
// SettingsService layers environment overrides over the config store.
//
// Services only talk to infrastructure through driven ports.
package services
