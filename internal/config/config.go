// Package config loads the tracker host configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tracker/internal/logging"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/ports"
	"github.com/aretw0/tracker/pkg/registry"
	"github.com/aretw0/tracker/pkg/validation"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "tracker.yaml"

// ID schemes.
const (
	IDsUUID     = "uuid"
	IDsSequence = "sequence"
)

// Config represents the structure of tracker.yaml.
type Config struct {
	LogLevel       string            `yaml:"log_level" json:"log_level"`
	IDs            string            `yaml:"ids" json:"ids"`
	IDPrefix       string            `yaml:"id_prefix" json:"id_prefix"`
	StrictIdentity bool              `yaml:"strict_identity" json:"strict_identity"`
	Validation     validation.Limits `yaml:"validation" json:"validation"`
	Seed           []domain.Draft    `yaml:"seed" json:"seed"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:   "info",
		IDs:        IDsUUID,
		Validation: validation.DefaultLimits(),
	}
}

// Load reads a configuration file (YAML or JSON, chosen by extension) on top of Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate checks the settings that cannot be caught by decoding alone.
// Seed drafts are not checked here; they go through the validator when added.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.IDs {
	case "", IDsUUID, IDsSequence:
	default:
		return fmt.Errorf("unknown id scheme %q (want %q or %q)", c.IDs, IDsUUID, IDsSequence)
	}
	return c.Validation.Check()
}

// IDGenerator builds the generator selected by IDs.
func (c Config) IDGenerator() ports.IDGenerator {
	if c.IDs == IDsSequence {
		return registry.NewSequenceGenerator(c.IDPrefix)
	}
	return registry.UUIDGenerator{}
}
