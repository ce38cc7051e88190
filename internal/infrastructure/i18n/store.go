package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"smartz/internal/domain"
	"smartz/internal/ports/output"
)

// Ensure Store implements the output.ResourceStore port.
var _ output.ResourceStore = (*Store)(nil)

// Store caches the tables of a ResourceSource and resolves bundles through
// the locale fallback chain. Each (bundle, locale) table is loaded at most
// once, including the fact that it does not exist; entries are never evicted.
// Load failures other than output.ErrTableNotFound are not cached.
type Store struct {
	source        output.ResourceSource
	defaultLocale language.Tag
	logger        *slog.Logger

	loads  singleflight.Group
	mu     sync.RWMutex
	tables map[tableKey]*table
}

type tableKey struct {
	bundle string
	locale language.Tag
}

type table struct {
	locale  language.Tag
	entries map[string]string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDefaultLocale sets the process default locale probed after the
// requested one. It defaults to English.
func WithDefaultLocale(tag language.Tag) StoreOption {
	return func(s *Store) {
		s.defaultLocale = tag
	}
}

// WithLogger sets the logger. It defaults to slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a Store reading tables from source.
func NewStore(source output.ResourceSource, opts ...StoreOption) *Store {
	s := &Store{
		source:        source,
		defaultLocale: language.English,
		logger:        slog.Default(),
		tables:        make(map[tableKey]*table),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultLocale returns the locale probed after the requested one.
func (s *Store) DefaultLocale() language.Tag {
	return s.defaultLocale
}

// Bundle returns the lookup for bundle under locale.
func (s *Store) Bundle(ctx context.Context, bundle string, locale language.Tag) (output.ResourceBundle, error) {
	chain := Chain(locale, s.defaultLocale)
	tables := make([]*table, 0, len(chain))
	for _, tag := range chain {
		t, err := s.table(ctx, bundle, tag)
		if err != nil {
			return nil, err
		}
		if t != nil {
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("bundle %s (locale %q): %w", bundle, locale, domain.ErrBundleNotFound)
	}
	if tables[0].locale != chain[0] {
		s.logger.Debug("i18n: falling back",
			"bundle", bundle, "requested", locale.String(), "resolved", tables[0].locale.String())
	}
	return &chainBundle{name: bundle, tables: tables}, nil
}

// Preload loads the fallback chains of bundle for every locale so later
// lookups do no I/O. A locale whose chain has no table at all is reported.
func (s *Store) Preload(ctx context.Context, bundle string, locales ...language.Tag) error {
	if len(locales) == 0 {
		locales = []language.Tag{language.Und}
	}
	var errs []error
	for _, locale := range locales {
		if _, err := s.Bundle(ctx, bundle, locale); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// table loads one table at most once. The load is shared by every caller
// asking for the same table and runs detached from their cancellation; a
// caller whose ctx ends first returns ctx.Err() while the load completes
// and is cached for the others.
func (s *Store) table(ctx context.Context, bundle string, locale language.Tag) (*table, error) {
	key := tableKey{bundle: bundle, locale: locale}
	if t, ok := s.cached(key); ok {
		return t, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(bundle+"\x00"+locale.String(), func() (any, error) {
		if t, ok := s.cached(key); ok {
			return t, nil
		}

		entries, err := s.source.LoadTable(loadCtx, bundle, locale)
		var loaded *table
		switch {
		case err == nil:
			loaded = &table{locale: locale, entries: make(map[string]string, len(entries))}
			for k, v := range entries {
				loaded.entries[k] = v
			}
			s.logger.Debug("i18n: table loaded",
				"bundle", bundle, "locale", locale.String(), "entries", len(entries))
		case errors.Is(err, output.ErrTableNotFound):
			s.logger.Debug("i18n: no table", "bundle", bundle, "locale", locale.String())
		default:
			s.logger.Warn("i18n: table load failed",
				"bundle", bundle, "locale", locale.String(), "error", err)
			return nil, fmt.Errorf("load bundle %s (locale %q): %w", bundle, locale, err)
		}

		s.mu.Lock()
		s.tables[key] = loaded
		s.mu.Unlock()
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*table), nil
	}
}

func (s *Store) cached(key tableKey) (*table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[key]
	return t, ok
}

// chainBundle is a bundle resolved for one locale: the existing tables of
// its fallback chain, most specific first.
type chainBundle struct {
	name   string
	tables []*table
}

func (b *chainBundle) Text(key string) (string, error) {
	for _, t := range b.tables {
		if text, ok := t.entries[key]; ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("bundle %s: key %q: %w", b.name, key, domain.ErrMissingResource)
}

func (b *chainBundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tables))
	for i, t := range b.tables {
		out[i] = t.locale
	}
	return out
}
