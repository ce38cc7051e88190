package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	"smartz/internal/application"
	"smartz/internal/config"
	"smartz/internal/domain"
	"smartz/internal/infrastructure/contracts"
	"smartz/internal/infrastructure/database"
	"smartz/internal/infrastructure/i18n"
	"smartz/internal/infrastructure/logging"
	"smartz/internal/ports/output"
)

// app holds the wiring shared by the subcommands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	registry *application.ContractRegistry
	store    *i18n.Store
	messages *application.MessageService
}

// newApp loads the configuration and the contracts file, and builds the
// resource store: PostgreSQL when DATABASE_URL is set, BUNDLE_DIR otherwise.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, registry: application.NewContractRegistry()}

	if err := a.loadContracts(); err != nil {
		return nil, err
	}

	var source output.ResourceSource
	if cfg.UsesDatabase() {
		a.pool, err = database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		source = database.NewPostgresSource(a.pool)
	} else {
		source = i18n.NewDirSource(cfg.BundleDir)
	}

	a.store = i18n.NewStore(source, i18n.WithDefaultLocale(cfg.Locale()), i18n.WithLogger(logger))
	a.messages = application.NewMessageService(a.store, a.registry, logger)
	return a, nil
}

func (a *app) loadContracts() error {
	path := a.cfg.ContractsFile
	loaded, err := contracts.LoadInto(a.registry, os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("contracts file not found, no contracts registered", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	a.logger.Debug("contracts loaded", "path", path, "count", len(loaded))
	return nil
}

// bundles returns the distinct bundles of the registered contracts.
func (a *app) bundles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range a.registry.Contracts() {
		if !seen[c.Bundle()] {
			seen[c.Bundle()] = true
			out = append(out, c.Bundle())
		}
	}
	return out
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func parseLocale(raw string) (language.Tag, error) {
	if raw == "" || raw == "root" {
		return language.Und, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("%q: %w", raw, domain.ErrInvalidLocale)
	}
	return tag, nil
}
