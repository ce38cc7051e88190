package output

// T renders the adapters' own user-facing strings (command descriptions,
// error replies) for a locale. Message contracts do not go through it.
type T interface {
	// T renders the message identified by key for the given locale.
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
