package i18n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"smartz/internal/ports/output"
)

// Ensure FSSource implements the output.ResourceSource port.
var _ output.ResourceSource = (*FSSource)(nil)

// Extensions lists the supported table formats in probing order.
var Extensions = []string{"toml", "json", "yaml", "yml", "properties"}

// FSSource reads tables from a file system. The base table of bundle
// "TestMessages" is TestMessages.toml (or any other supported extension);
// the Chinese one is TestMessages.zh.toml, the Taiwanese one
// TestMessages.zh-TW.toml. The first existing extension wins.
//
// TOML, JSON and YAML files hold flat key = "text" pairs or nested tables
// whose keys are joined with ".". No key is reserved: [TEST_KEY1] with
// code and description yields TEST_KEY1.code and TEST_KEY1.description.
// Non-string scalars are kept in their printed form; lists are rejected.
type FSSource struct {
	fsys         fs.FS
	unmarshalers map[string]unmarshalFunc
}

type unmarshalFunc func(data []byte, v any) error

// NewFSSource returns a source reading from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{
		fsys: fsys,
		unmarshalers: map[string]unmarshalFunc{
			"toml": toml.Unmarshal,
			"json": json.Unmarshal,
			"yaml": yaml.Unmarshal,
			"yml":  yaml.Unmarshal,
		},
	}
}

// NewDirSource returns a source reading from the directory dir.
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir))
}

// TableFileName returns the file name of a table.
func TableFileName(bundle string, locale language.Tag, ext string) string {
	if locale.IsRoot() {
		return bundle + "." + ext
	}
	return bundle + "." + locale.String() + "." + ext
}

// LoadTable implements output.ResourceSource.
func (s *FSSource) LoadTable(ctx context.Context, bundle string, locale language.Tag) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range Extensions {
		name := TableFileName(bundle, locale, ext)
		data, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return s.parse(name, ext, data)
	}
	return nil, output.ErrTableNotFound
}

func (s *FSSource) parse(name, ext string, data []byte) (map[string]string, error) {
	if ext == "properties" {
		loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		p, err := loader.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return p.Map(), nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}
	var raw map[string]any
	if err := s.unmarshalers[ext](data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	entries := make(map[string]string, len(raw))
	if err := flatten(entries, "", raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return entries, nil
}

func flatten(dst map[string]string, prefix string, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case string:
			dst[key] = v
		case map[string]any:
			if err := flatten(dst, key, v); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(v))
			for nk, nv := range v {
				nested[fmt.Sprint(nk)] = nv
			}
			if err := flatten(dst, key, nested); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("key %q: lists are not supported", key)
		case nil:
			dst[key] = ""
		default:
			dst[key] = fmt.Sprint(v)
		}
	}
	return nil
}
