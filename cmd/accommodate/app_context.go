package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/accommodation"
	"github.com/alexisbeaulieu97/accommodate/internal/config"
	"github.com/alexisbeaulieu97/accommodate/internal/i18n"
	"github.com/alexisbeaulieu97/accommodate/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/metrics"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
	"github.com/alexisbeaulieu97/accommodate/internal/storage"
)

// AppContext bundles long-lived services created for a command.
type AppContext struct {
	Config     *config.Config
	Logger     ports.Logger
	Store      *settings.Store
	Repo       *storage.FileRepository
	Profiles   *profiles.Controller
	Metrics    *metrics.Metrics
	Publisher  ports.EventPublisher
	Translator *i18n.Catalog

	stops []func()
}

// newAppContext loads configuration, restores the persisted tree and starts
// saving every later change back to disk.
func newAppContext(cmd *cobra.Command, flags *rootFlags, name string) (context.Context, *AppContext, error) {
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return nil, nil, newCommandError(name, "loading configuration", err, "Fix the configuration file or pass --config.")
	}
	if flags.settingsPath != "" {
		cfg.SettingsPath = flags.settingsPath
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	base, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.HumanLogs, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, nil, newCommandError(name, "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	ctx := ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID())
	log := base.WithFields(map[string]any{"command": name, "correlation_id": ports.GetCorrelationID(ctx)})

	translator, err := i18n.Load(cfg.Locale)
	if err != nil {
		return nil, nil, newCommandError(name, "loading translations", err, "Set locale to one of en, es or fr.")
	}

	repo := storage.NewFileRepository(cfg.SettingsPath)
	store := settings.NewStore(settings.Defaults())
	if err := storage.Restore(ctx, store, repo); err != nil {
		return nil, nil, newCommandError(name, "restoring settings", err, "Fix or remove "+repo.Path()+".")
	}

	app := &AppContext{
		Config:     cfg,
		Logger:     log,
		Store:      store,
		Repo:       repo,
		Profiles:   profiles.NewController(store, log),
		Metrics:    metrics.New(),
		Publisher:  events.NewLoggingPublisher(log),
		Translator: translator,
	}
	app.stops = append(app.stops,
		storage.AutoSave(ctx, store, repo, log),
		events.BridgeStore(ctx, store, app.Publisher),
		metrics.ObserveStore(store, app.Metrics),
	)

	log.Debug("settings restored", "path", repo.Path())
	return ctx, app, nil
}

func (a *AppContext) accommodationOptions() accommodation.Options {
	return accommodation.Options{ReadingBandPx: a.Config.ReadingBandPx}
}

// Close detaches the persistence and event observers.
func (a *AppContext) Close() {
	for i := len(a.stops) - 1; i >= 0; i-- {
		a.stops[i]()
	}
	a.stops = nil
}
