package output

import (
	"context"
	"errors"

	"golang.org/x/text/language"
)

// ErrTableNotFound is returned by a ResourceSource when no table exists for
// exactly the requested bundle and locale.
var ErrTableNotFound = errors.New("resource table not found")

// ResourceSource loads one locale's key/text table of a bundle. language.Und
// designates the base (unlocalized) table.
type ResourceSource interface {
	LoadTable(ctx context.Context, bundle string, locale language.Tag) (map[string]string, error)
}

// ResourceStore hands out locale-resolved views over bundles.
type ResourceStore interface {
	// Bundle returns the lookup for bundle under locale, or an error wrapping
	// domain.ErrBundleNotFound when no table of the fallback chain exists.
	Bundle(ctx context.Context, bundle string, locale language.Tag) (ResourceBundle, error)
}

// ResourceBundle looks keys up through a locale fallback chain.
type ResourceBundle interface {
	// Text returns the raw text of key from the most specific table that
	// holds it, or an error wrapping domain.ErrMissingResource.
	Text(key string) (string, error)
	// Locales lists the tables in the chain, most specific first.
	Locales() []language.Tag
}
