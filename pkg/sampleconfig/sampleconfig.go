// Package sampleconfig produces an example module catalog in any of the
// formats the catalog loader accepts.
package sampleconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

type operation struct {
	Type        string `json:"type" yaml:"type" toml:"type"`
	Source      string `json:"source" yaml:"source" toml:"source"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Binary      string `json:"binary,omitempty" yaml:"binary,omitempty" toml:"binary,omitempty"`
}

type module struct {
	Description string      `json:"description" yaml:"description" toml:"description"`
	Enabled     bool        `json:"enabled" yaml:"enabled" toml:"enabled"`
	Operations  []operation `json:"operations" yaml:"operations" toml:"operations"`
}

type catalog struct {
	Modules map[string]module `json:"modules" yaml:"modules" toml:"modules"`
}

func sample() catalog {
	return catalog{Modules: map[string]module{
		"core": {
			Description: "Slash commands, agents and the codeagent-wrapper helper",
			Enabled:     true,
			Operations: []operation{
				{Type: string(types.OperationMergeDir), Source: "commands", Target: "commands", Description: "Install slash commands"},
				{Type: string(types.OperationMergeDir), Source: "agents", Target: "agents", Description: "Install agents"},
				{Type: string(types.OperationReplaceFile), Source: "CLAUDE.md", Description: "Install memory file"},
				{Type: string(types.OperationProvisionBinary), Source: "codeagent-wrapper", Binary: "codeagent-wrapper", Description: "Install codeagent-wrapper"},
			},
		},
		"skills": {
			Description: "Bundled skills, replaced on every install",
			Enabled:     false,
			Operations: []operation{
				{Type: string(types.OperationReplaceDir), Source: "skills", Target: "skills"},
			},
		},
		"auggie": {
			Description: "Patch the Auggie MCP entry point",
			Enabled:     false,
			Operations: []operation{
				{Type: string(types.OperationPatchHostFile), Source: "patches/augment.mjs"},
			},
		},
	}}
}

// FormatFromPath infers a format from a file extension, defaulting to JSON
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Generate renders the sample catalog
func Generate(format string) ([]byte, error) {
	c := sample()
	switch strings.ToLower(format) {
	case FormatJSON, "":
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML, "yml":
		return yaml.Marshal(c)
	case FormatTOML:
		return toml.Marshal(c)
	default:
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, "unsupported format %q (use json, yaml or toml)", format)
	}
}

// Write stores the sample catalog at path. An existing file is left
// untouched and reported with written=false.
func Write(path, format string) (written bool, err error) {
	logger := logging.GetLogger("sampleconfig")

	if format == "" {
		format = FormatFromPath(path)
	}
	content, err := Generate(format)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("failed to write config to %s: %w", path, err)
	}

	logger.Info().Str("path", path).Str("format", format).Msg("Written config file")
	return true, nil
}
