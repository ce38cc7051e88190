// Package msgformat substitutes positional {n} placeholders in message texts.
package msgformat

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders positional arguments for one locale. Strings are copied
// as-is; other values go through a locale-aware printer, so numbers use the
// locale's digit grouping.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format replaces each {n} in pattern with args[n]. Placeholders whose index
// is out of range, and braces that do not enclose a plain decimal index, are
// left untouched.
func (f *Formatter) Format(pattern string, args ...any) string {
	if len(args) == 0 || !strings.Contains(pattern, "{") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern))
	for {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(pattern[open:], '}')
		if end < 0 {
			break
		}
		end += open

		b.WriteString(pattern[:open])
		if i, ok := index(pattern[open+1 : end]); ok && i < len(args) {
			b.WriteString(f.render(args[i]))
		} else {
			b.WriteString(pattern[open : end+1])
		}
		pattern = pattern[end+1:]
	}
	b.WriteString(pattern)
	return b.String()
}

func (f *Formatter) render(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return "null"
	default:
		return f.printer.Sprint(v)
	}
}

func index(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Format formats pattern with the root locale.
func Format(pattern string, args ...any) string {
	return New(language.Und).Format(pattern, args...)
}
