package entities

// MessageKey identifies one logical message row in a bundle.
type MessageKey interface {
	MessageKey() string
}

// EnhancedMessageKey is a MessageKey carrying positional arguments for the
// {0}, {1}, ... placeholders of its texts.
type EnhancedMessageKey interface {
	MessageKey
	Context() []any
}

// Key is a plain MessageKey.
type Key string

func (k Key) MessageKey() string { return string(k) }

// EnhancedKey is an EnhancedMessageKey built with Enhance.
type EnhancedKey struct {
	key     string
	context []any
}

// Enhance returns an EnhancedKey for key with the given positional context.
// The context may be empty.
func Enhance(key string, context ...any) EnhancedKey {
	ctx := make([]any, len(context))
	copy(ctx, context)
	return EnhancedKey{key: key, context: ctx}
}

func (k EnhancedKey) MessageKey() string { return k.key }

// Context returns a copy of the positional arguments.
func (k EnhancedKey) Context() []any {
	out := make([]any, len(k.context))
	copy(out, k.context)
	return out
}
