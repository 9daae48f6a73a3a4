package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/sawmill/internal/config"
	"github.com/crimson-sun/sawmill/internal/dataview"
	"github.com/crimson-sun/sawmill/internal/httpclient"
	"github.com/crimson-sun/sawmill/internal/logging"
	"github.com/crimson-sun/sawmill/internal/logsources"
	"github.com/crimson-sun/sawmill/internal/logview"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.Output.LogLevel), true)

	if cfg.ShowVersion {
		fmt.Println("sawmill " + config.Version)
		return
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Set up graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	api := httpclient.New(cfg.API.Endpoint, cfg.API.APIKey, httpclient.WithTimeout(cfg.API.Timeout))
	dataViews := dataview.NewClient(api)

	// Log sources come from the settings API unless given directly.
	var sources logview.LogSourcesService
	if len(cfg.Resolve.StaticSources) > 0 {
		sources = logsources.NewStatic(cfg.Resolve.StaticSources)
	} else {
		sources = logsources.NewClient(api)
	}

	locale := logview.MatchLocale(cfg.Output.Locale)
	store, err := logview.NewFileStore(cfg.Resolve.StorePath, logview.DefaultAttributes(locale))
	if err != nil {
		slog.Error("failed to load log view store", "path", cfg.Resolve.StorePath, "error", err)
		os.Exit(1)
	}

	view, err := store.Get(cfg.Resolve.LogViewID)
	if err != nil {
		slog.Error("unknown log view", "id", cfg.Resolve.LogViewID, "error", err)
		os.Exit(1)
	}

	resolver := logview.NewResolver(dataViews, sources, cfg.Resolve.MessageFields)

	slog.Info("resolving log view", "id", view.ID, "kind", string(view.Attributes.LogIndices.Kind))
	resolved, err := resolver.Resolve(ctx, view)
	if err != nil {
		var resolveErr *logview.ResolveError
		if errors.As(err, &resolveErr) {
			slog.Error("resolution failed", "id", resolveErr.LogViewID, "reason", resolveErr.Reason, "error", resolveErr.Unwrap())
		} else {
			slog.Error("resolution failed", "id", view.ID, "error", err)
		}
		os.Exit(1)
	}

	// Ad-hoc data views exist only in this process unless explicitly persisted.
	if cfg.Resolve.Persist && view.Attributes.LogIndices.Kind != logview.KindDataView {
		saved, err := dataViews.Save(ctx, resolved.DataView)
		if err != nil {
			slog.Error("failed to persist data view", "id", resolved.DataView.ID, "error", err)
			os.Exit(1)
		}
		resolved.DataView = saved
		slog.Info("persisted ad-hoc data view", "id", saved.ID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resolved); err != nil {
		slog.Error("failed to encode resolved view", "error", err)
		os.Exit(1)
	}
}
