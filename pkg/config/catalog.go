package config

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Catalog is the parsed module configuration file
type Catalog struct {
	Modules map[string]types.Module `koanf:"modules" validate:"dive"`

	// Path is the absolute path the catalog was read from
	Path string `koanf:"-"`
}

// SourceRoot is the directory operation sources are resolved against
func (c *Catalog) SourceRoot() string {
	return filepath.Dir(c.Path)
}

// ResolveCatalogPath makes a relative catalog path absolute against the
// working directory
func ResolveCatalogPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrInvalidInput, "cannot resolve config path %s", path)
	}
	return abs, nil
}

// parserFor picks a koanf parser from the file extension; JSON is the default
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return json.Parser()
	}
}

// LoadCatalog reads and validates the catalog at path. Module names are
// taken from the catalog keys.
func LoadCatalog(path string) (*Catalog, error) {
	abs, err := ResolveCatalogPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil, apperrors.Newf(apperrors.ErrConfigNotFound, "config file not found: %s", abs).
			WithDetail("path", abs).
			WithDetail("hint", "pass --config with the path to your module catalog")
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(abs), parserFor(abs)); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrConfigParse, "failed to parse config file %s", abs)
	}

	cat := &Catalog{}
	if err := k.UnmarshalWithConf("", cat, unmarshalConf(cat)); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrConfigInvalid, "failed to decode config file %s", abs)
	}
	cat.Path = abs

	for name, m := range cat.Modules {
		m.Name = name
		cat.Modules[name] = m
	}

	if err := validateStruct(cat, abs); err != nil {
		return nil, err
	}
	return cat, nil
}
