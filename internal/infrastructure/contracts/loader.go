// Package contracts reads declarative message contract definitions from TOML.
package contracts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"smartz/internal/domain/entities"
)

type file struct {
	Contracts []contract `toml:"contract"`
}

type contract struct {
	Name      string  `toml:"name"`
	Bundle    string  `toml:"bundle"`
	Separator string  `toml:"separator"`
	Fields    []field `toml:"field"`
}

type field struct {
	Name     string `toml:"name"`
	Suffix   string `toml:"suffix"`
	Required *bool  `toml:"required"`
}

// Registrar accepts contract definitions, e.g. application.ContractRegistry.
type Registrar interface {
	Register(def entities.ContractDefinition) (*entities.Contract, error)
}

// Load parses the contracts file at path in fsys. Unknown keys are rejected.
// Fields are required unless they say required = false.
func Load(fsys fs.FS, path string) ([]entities.ContractDefinition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("contracts: %w", err)
	}
	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) ([]entities.ContractDefinition, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("contracts: %s", strict.String())
		}
		return nil, fmt.Errorf("contracts: %w", err)
	}

	defs := make([]entities.ContractDefinition, 0, len(f.Contracts))
	for _, c := range f.Contracts {
		def := entities.ContractDefinition{
			Name:      c.Name,
			Bundle:    c.Bundle,
			Separator: c.Separator,
			Fields:    make([]entities.FieldDefinition, 0, len(c.Fields)),
		}
		for _, fd := range c.Fields {
			def.Fields = append(def.Fields, entities.FieldDefinition{
				Name:     fd.Name,
				Suffix:   fd.Suffix,
				Optional: fd.Required != nil && !*fd.Required,
			})
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadInto loads the contracts file and registers every definition with r.
// It stops at the first definition r rejects.
func LoadInto(r Registrar, fsys fs.FS, path string) ([]*entities.Contract, error) {
	defs, err := Load(fsys, path)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Contract, 0, len(defs))
	for _, def := range defs {
		c, err := r.Register(def)
		if err != nil {
			return nil, fmt.Errorf("contracts: %s: %w", path, err)
		}
		out = append(out, c)
	}
	return out, nil
}
