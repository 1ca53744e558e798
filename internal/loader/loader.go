// Package loader reads layered configuration documents from disk and
// produces one merged tree per environment.
//
// Each environment is built from a required base document plus an
// optional override document named after the environment. Documents may
// be YAML, JSON, or TOML; the first extension found wins.
package loader

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/cfgctl/internal/configtree"
	"github.com/thoreinstein/cfgctl/internal/envs"
	cfgerrors "github.com/thoreinstein/cfgctl/internal/errors"
	"github.com/thoreinstein/cfgctl/pkg/fileutil"
)

// baseName is the file stem of the environment-independent document.
const baseName = "base"

// extensions lists the supported document formats in resolution order.
var extensions = []string{".yaml", ".yml", ".json", ".toml"}

// Loader resolves and merges configuration documents from one directory.
type Loader struct {
	dir string
}

// New creates a Loader reading documents from dir.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load builds the merged configuration tree for env: the base document
// with the environment's override applied on top. A missing override
// document is not an error; a missing or unparsable base document is.
func (l *Loader) Load(env envs.Environment) (configtree.Tree, error) {
	base, err := l.readDocument(baseName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(cfgerrors.ErrBaseNotFound, "in %s", l.dir)
		}
		return nil, err
	}

	override, err := l.readDocument(string(env))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			override = configtree.Tree{}
		} else {
			return nil, err
		}
	}

	return configtree.Merge(override, base), nil
}

// Document reads and decodes a single document layer by its file stem
// without merging. Diagnostic checks use it to inspect one layer in
// isolation; a missing document reports os.ErrNotExist.
func (l *Loader) Document(stem string) (configtree.Tree, error) {
	return l.readDocument(stem)
}

// readDocument locates and decodes the document with the given file
// stem. The file is read and closed before decoding begins.
func (l *Loader) readDocument(stem string) (configtree.Tree, error) {
	path, err := l.resolve(stem)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	tree, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return tree, nil
}

// resolve returns the first existing document path for stem, trying the
// supported extensions in order.
func (l *Loader) resolve(stem string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(l.dir, stem+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Wrapf(os.ErrNotExist, "no document for %q in %s", stem, l.dir)
}

// decode unmarshals one document and normalizes it to the Tree shape.
// An empty document decodes to an empty tree.
func decode(data []byte, ext string) (configtree.Tree, error) {
	var raw map[string]any

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".json":
		if len(data) > 0 {
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, err
			}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf("unsupported document format %q", ext)
	}

	if raw == nil {
		return configtree.Tree{}, nil
	}
	tree, ok := configtree.Normalize(raw).(configtree.Tree)
	if !ok {
		return nil, errors.New("document root must be a mapping")
	}
	return tree, nil
}
