package i18n

import "golang.org/x/text/language"

// Chain lists the tables probed for locale, most specific first: the
// locale's language+region, its language alone, the same two for
// defaultLocale, and finally the base table (language.Und). Scripts and
// variants are not part of the chain. Duplicates are dropped.
func Chain(locale, defaultLocale language.Tag) []language.Tag {
	chain := make([]language.Tag, 0, 5)
	seen := make(map[language.Tag]bool, 5)
	add := func(tags ...language.Tag) {
		for _, t := range tags {
			if !seen[t] {
				seen[t] = true
				chain = append(chain, t)
			}
		}
	}

	add(candidates(locale)...)
	add(candidates(defaultLocale)...)
	add(language.Und)
	return chain
}

func candidates(t language.Tag) []language.Tag {
	if t.IsRoot() {
		return nil
	}
	base, conf := t.Base()
	if conf == language.No {
		return nil
	}

	out := make([]language.Tag, 0, 2)
	if region, conf := t.Region(); conf == language.Exact {
		if tag, err := language.Compose(base, region); err == nil {
			out = append(out, tag)
		}
	}
	if tag, err := language.Compose(base); err == nil {
		out = append(out, tag)
	}
	return out
}
