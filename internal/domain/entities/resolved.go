package entities

import (
	"fmt"

	"golang.org/x/text/language"
)

// ResolvedField is one contract field together with its resolved text.
type ResolvedField struct {
	FieldSpec
	Text    string
	Present bool
}

// ResolvedMessage is the immutable outcome of resolving a contract for one
// key and locale. Every declared field is covered; optional fields whose
// resource was missing are absent.
type ResolvedMessage struct {
	contract *Contract
	key      string
	locale   language.Tag
	texts    []string
	present  []bool
}

// NewResolvedMessage builds a ResolvedMessage from texts keyed by field name.
// Fields missing from texts are absent. A name that is not declared on c is
// rejected.
func NewResolvedMessage(c *Contract, key string, locale language.Tag, texts map[string]string) (*ResolvedMessage, error) {
	m := &ResolvedMessage{
		contract: c,
		key:      key,
		locale:   locale,
		texts:    make([]string, len(c.fields)),
		present:  make([]bool, len(c.fields)),
	}
	for name, text := range texts {
		i, ok := c.index(name)
		if !ok {
			return nil, fmt.Errorf("entities: field %q is not declared on contract %q", name, c.name)
		}
		m.texts[i] = text
		m.present[i] = true
	}
	return m, nil
}

// Get returns the text of the field declared as name, and whether it is
// present. Asking for a field the contract does not declare is a programming
// error and panics.
func (m *ResolvedMessage) Get(name string) (string, bool) {
	i, ok := m.contract.index(name)
	if !ok {
		panic(fmt.Sprintf("entities: field %q is not declared on contract %q", name, m.contract.name))
	}
	return m.texts[i], m.present[i]
}

// Text is Get without the presence flag; absent fields yield "".
func (m *ResolvedMessage) Text(name string) string {
	text, _ := m.Get(name)
	return text
}

// Fields returns every declared field with its outcome, in declaration order.
func (m *ResolvedMessage) Fields() []ResolvedField {
	out := make([]ResolvedField, len(m.contract.fields))
	for i, f := range m.contract.fields {
		out[i] = ResolvedField{FieldSpec: f, Text: m.texts[i], Present: m.present[i]}
	}
	return out
}

// Map returns the present fields keyed by property name.
func (m *ResolvedMessage) Map() map[string]string {
	out := make(map[string]string, len(m.texts))
	for i, f := range m.contract.fields {
		if m.present[i] {
			out[f.Property] = m.texts[i]
		}
	}
	return out
}

func (m *ResolvedMessage) Contract() *Contract  { return m.contract }
func (m *ResolvedMessage) Key() string          { return m.key }
func (m *ResolvedMessage) Locale() language.Tag { return m.locale }
