package entities

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"smartz/internal/domain"
)

// DefaultSeparator joins a message key and a field suffix.
const DefaultSeparator = "_"

// accessorPrefixes are the recognized field name prefixes, checked in order.
var accessorPrefixes = []string{"get", "is"}

// FieldDefinition declares one field of a message contract.
type FieldDefinition struct {
	// Name is accessor-style, e.g. "getCode" or "isEnabled". Any non-empty
	// name is accepted when Suffix is set.
	Name string
	// Suffix overrides the suffix derived from Name. Blank means derive.
	Suffix string
	// Optional fields resolve to absent instead of failing when their
	// resource is missing.
	Optional bool
}

// ContractDefinition is the declarative form of a message contract.
type ContractDefinition struct {
	Name      string
	Bundle    string
	Separator string
	Fields    []FieldDefinition
}

// FieldSpec is a validated contract field.
type FieldSpec struct {
	Name     string
	Property string
	Suffix   string
	Required bool
}

// Contract is an immutable, validated message contract. It is safe for
// concurrent use.
type Contract struct {
	name      string
	bundle    string
	separator string
	fields    []FieldSpec
	byName    map[string]int
	bySuffix  map[string]int
}

// NewContract validates def and builds a Contract. It has no side effects and
// may be memoized per definition.
func NewContract(def ContractDefinition) (*Contract, error) {
	if strings.TrimSpace(def.Bundle) == "" {
		return nil, fmt.Errorf("contract %q: %w", def.Name, domain.ErrMissingBundle)
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("contract %q: %w", def.Name, domain.ErrEmptyContract)
	}

	sep := def.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	c := &Contract{
		name:      def.Name,
		bundle:    def.Bundle,
		separator: sep,
		fields:    make([]FieldSpec, 0, len(def.Fields)),
		byName:    make(map[string]int, len(def.Fields)),
		bySuffix:  make(map[string]int, len(def.Fields)),
	}

	for _, fd := range def.Fields {
		suffix := strings.TrimSpace(fd.Suffix)
		property, err := PropertyName(fd.Name)
		switch {
		case err == nil:
		case suffix != "" && fd.Name != "":
			// An explicit suffix makes the accessor form optional.
			property = fd.Name
		default:
			return nil, fmt.Errorf("contract %q: %w", def.Name, err)
		}
		if suffix == "" {
			suffix = property
		}

		if _, dup := c.byName[fd.Name]; dup {
			return nil, fmt.Errorf("contract %q: field %s: %w", def.Name, fd.Name, domain.ErrDuplicateField)
		}
		if other, dup := c.bySuffix[suffix]; dup {
			return nil, fmt.Errorf("contract %q: fields %s and %s both use suffix %q: %w",
				def.Name, c.fields[other].Name, fd.Name, suffix, domain.ErrDuplicateSuffix)
		}

		c.byName[fd.Name] = len(c.fields)
		c.bySuffix[suffix] = len(c.fields)
		c.fields = append(c.fields, FieldSpec{
			Name:     fd.Name,
			Property: property,
			Suffix:   suffix,
			Required: !fd.Optional,
		})
	}

	return c, nil
}

// PropertyName strips a recognized accessor prefix ("get" or "is") from name
// and decapitalizes the remainder.
func PropertyName(name string) (string, error) {
	for _, prefix := range accessorPrefixes {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := name[len(prefix):]
		if rest == "" {
			return "", fmt.Errorf("field %q: %w", name, domain.ErrIllegalFieldName)
		}
		return decapitalize(rest), nil
	}
	return "", fmt.Errorf("field %q: %w", name, domain.ErrIllegalFieldName)
}

// decapitalize lowercases the first rune unless the first two runes are both
// upper case, so "Code" becomes "code" and "URL" stays "URL".
func decapitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size < len(s) {
		second, _ := utf8.DecodeRuneInString(s[size:])
		if unicode.IsUpper(first) && unicode.IsUpper(second) {
			return s
		}
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func (c *Contract) Name() string      { return c.name }
func (c *Contract) Bundle() string    { return c.bundle }
func (c *Contract) Separator() string { return c.separator }

// Fields returns the fields in declaration order.
func (c *Contract) Fields() []FieldSpec {
	out := make([]FieldSpec, len(c.fields))
	copy(out, c.fields)
	return out
}

// Field returns the field declared under name.
func (c *Contract) Field(name string) (FieldSpec, bool) {
	i, ok := c.byName[name]
	if !ok {
		return FieldSpec{}, false
	}
	return c.fields[i], true
}

// FieldBySuffix returns the field that owns suffix.
func (c *Contract) FieldBySuffix(suffix string) (FieldSpec, bool) {
	i, ok := c.bySuffix[suffix]
	if !ok {
		return FieldSpec{}, false
	}
	return c.fields[i], true
}

// CompositeKey names the resource entry of field for key.
func (c *Contract) CompositeKey(key string, field FieldSpec) string {
	return key + c.separator + field.Suffix
}

func (c *Contract) index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}
