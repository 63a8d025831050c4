package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every settings environment variable
const EnvPrefix = "MODINSTALL_"

// Settings key names, shared by flags, env vars and the settings file
const (
	KeyInstallDir   = "install_dir"
	KeyConfig       = "config"
	KeyModule       = "module"
	KeyHelperName   = "helper_name"
	KeyBackupSuffix = "backup_suffix"
)

// Settings are the effective CLI defaults after all layers are applied
type Settings struct {
	InstallDir   string `koanf:"install_dir" validate:"required"`
	Config       string `koanf:"config" validate:"required"`
	Module       string `koanf:"module" validate:"required"`
	HelperName   string `koanf:"helper_name" validate:"required"`
	BackupSuffix string `koanf:"backup_suffix" validate:"required"`
}

// SettingsPath returns the optional user settings file location
func SettingsPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, logging.AppName, "settings.toml")
}

// LoadSettings merges the settings layers. overrides holds values set
// explicitly on the command line, keyed by settings key.
func LoadSettings(overrides map[string]interface{}) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User settings file if it exists
	userPath := SettingsPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrConfigParse, "failed to load settings from %s", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user settings")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal, "failed to load environment settings")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal, "failed to apply flag overrides")
		}
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, unmarshalConf(&s)); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigInvalid, "failed to decode settings")
	}
	if err := validateStruct(&s, "settings"); err != nil {
		return nil, err
	}
	return &s, nil
}
