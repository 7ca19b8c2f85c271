// Package config loads client settings from yaml files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/nisimpson/ezcms/operation"
	"gopkg.in/yaml.v3"
)

const (
	defaultPageSize = 25
)

// Duration parses yaml scalars like "24h" or "90s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Value returns the parsed duration.
func (d Duration) Value() time.Duration { return time.Duration(d) }

// API holds content API client settings.
type API struct {
	Space       string `yaml:"space"`
	Environment string `yaml:"environment"`
	PageSize    int    `yaml:"pageSize"`
	BatchSize   int    `yaml:"batchSize"`
}

func (a *API) GenerateDefault() {
	if a.PageSize == 0 {
		a.PageSize = defaultPageSize
	}
	if a.BatchSize == 0 {
		a.BatchSize = operation.MaxBatchWriteSize
	}
}

func (a *API) Validate() error {
	if a == nil {
		return fmt.Errorf("api section is nil")
	}
	if a.Space == "" {
		return fmt.Errorf("space is empty")
	}
	if a.PageSize < 0 {
		return fmt.Errorf("page size must not be negative")
	}
	if a.BatchSize < 0 || a.BatchSize > operation.MaxBatchWriteSize {
		return fmt.Errorf("batch size must be between 0 and %d", operation.MaxBatchWriteSize)
	}
	return nil
}

// Cursor holds cursor token store settings. The section is optional; a nil
// section disables token storage.
type Cursor struct {
	Table  string   `yaml:"table"`
	Region string   `yaml:"region"`
	TTL    Duration `yaml:"ttl"`
}

func (c *Cursor) Validate() error {
	if c == nil {
		return nil
	}
	if c.Table == "" {
		return fmt.Errorf("cursor table is empty")
	}
	if c.TTL < 0 {
		return fmt.Errorf("cursor ttl must not be negative")
	}
	return nil
}

// Settings is the top level configuration document.
type Settings struct {
	API    *API    `yaml:"api"`
	Cursor *Cursor `yaml:"cursor"`
}

func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("settings is nil")
	}
	if err := s.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := s.Cursor.Validate(); err != nil {
		return fmt.Errorf("cursor: %w", err)
	}
	return nil
}

// ReadConfig reads, validates, and defaults the settings at the provided
// file path.
func ReadConfig(fp string) (*Settings, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", fp, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", fp, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	settings.API.GenerateDefault()
	return &settings, nil
}
