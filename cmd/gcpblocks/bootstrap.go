package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driven/auth"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driven/google"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/cli"
	"github.com/custodia-labs/gcpblocks/internal/blocks/catalog"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/core/services"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// bootstrap wires the adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	tokens := auth.NewFactory(&http.Client{Timeout: settings.HTTP.Timeout})
	credentials := services.NewCredentialResolver(tokens)
	transport := google.NewTransport(*settings, nil)
	registry := services.NewBlockRegistry(catalog.All())

	var (
		history driven.HistoryStore
		closers []func() error
	)
	if settings.History.Enabled {
		store, err := sqlite.NewStore(opts.DataDir)
		if err != nil {
			logger.Warn("history database unavailable, keeping history in memory: %v", err)
			history = memory.NewHistoryStore()
		} else {
			history = store.HistoryStore()
			closers = append(closers, store.Close)
		}
	}

	invoker := services.NewInvokerService(registry, settingsService, credentials, transport, history)
	historyService := services.NewHistoryService(history, settingsService)
	clients := google.NewClients(settings.HTTP.UserAgent)

	if history != nil && settings.History.RetentionDays > 0 {
		if n, err := historyService.Prune(ctx, 0); err != nil {
			logger.Warn("pruning history: %v", err)
		} else if n > 0 {
			logger.Debug("pruned %d invocations", n)
		}
	}

	return &cli.Services{
		Registry:      registry,
		Invoker:       invoker,
		Settings:      settingsService,
		History:       historyService,
		Credentials:   services.NewCredentialCheckService(settingsService, credentials, clients),
		ConfigWatcher: configStore,
		Reload:        newReload(settingsService, transport, tokens),
		Close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}, nil
}

// newReload re-applies settings to the transport and the token exchange
// client after the config file changed.
func newReload(settings driving.SettingsService, transport *google.Transport, tokens *auth.Factory) func() {
	return func() {
		updated, err := settings.Get()
		if err != nil {
			logger.Warn("reloading settings: %v", err)
			return
		}
		transport.Apply(*updated)
		if tokens.HTTPClient().Timeout != updated.HTTP.Timeout {
			tokens.SetHTTPClient(&http.Client{Timeout: updated.HTTP.Timeout})
		}
		logger.Info("settings reloaded")
	}
}
