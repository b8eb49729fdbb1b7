// Package config provides configuration management for the catalog generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingGOVUKSource     = errors.New("sources.govuk.url or sources.govuk.file is required")
	ErrInvalidMaxAttempts     = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay    = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoff         = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout         = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingOutputPath      = errors.New("output.path is required")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrDetachmentMissingBox   = errors.New("detachment row requires a box_number")
	ErrDetachmentMissingLoc   = errors.New("detachment row requires a location")
	ErrDetachmentMissingGroup = errors.New("detachment row requires a group designator")
)

// Config represents the complete generator configuration.
type Config struct {
	Sources     SourcesConfig   `yaml:"sources"`
	Retry       RetryPolicy     `yaml:"retry"`
	Output      OutputConfig    `yaml:"output"`
	Logging     LoggingConfig   `yaml:"logging"`
	Detachments []DetachmentRow `yaml:"detachments"`
}

// SourcesConfig locates the two raw inputs.
type SourcesConfig struct {
	GOVUK SourceConfig `yaml:"govuk"`
	FCDO  SourceConfig `yaml:"fcdo"`
}

// SourceConfig represents one raw input, remote or pre-downloaded.
type SourceConfig struct {
	URL        string   `yaml:"url"`
	File       string   `yaml:"file"`
	BackupURLs []string `yaml:"backup_urls"`
}

// IsLocalFile returns true if this source uses a local file.
func (s *SourceConfig) IsLocalFile() bool {
	return s.File != ""
}

// IsConfigured returns true if the source has any location at all.
// The FCDO source is optional; an unconfigured one is skipped.
func (s *SourceConfig) IsConfigured() bool {
	return s.URL != "" || s.File != ""
}

// AllURLs returns the primary URL followed by any backups.
func (s *SourceConfig) AllURLs() []string {
	if s.URL == "" {
		return nil
	}

	return append([]string{s.URL}, s.BackupURLs...)
}

// RetryPolicy defines retry behavior for remote fetches.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// OutputConfig defines where and how the catalog document is written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	SchemaRef   string `yaml:"schema_ref"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowUnmapped bool   `yaml:"show_unmapped"`
}

// DetachmentRow is one built-in isolated-detachment entry. These share a
// single designator group and are distinguished by box number; they come
// from static configuration, not from scraping.
type DetachmentRow struct {
	Group     string `yaml:"group"`
	BoxNumber string `yaml:"box_number"`
	Location  string `yaml:"location"`
	Postcode  string `yaml:"postcode"`
	Country   string `yaml:"country"`
}

// Built-in isolated-detachment defaults. All isolated detachments sit under
// BFPO 105 in Germany with a shared forces postcode.
const (
	DetachmentGroup    = "BFPO 105"
	DetachmentPostcode = "BF1 0AX"
	DetachmentCountry  = "Germany"
)

// DefaultDetachments returns the fixed isolated-detachment table used when
// the configuration does not override it.
func DefaultDetachments() []DetachmentRow {
	builtins := []struct {
		location string
		box      string
	}{
		{"Defence Section Berlin", "545"},
		{"JSSO Hambuehren", "575"},
		{"ATC Oberstdorf", "589"},
		{"Army Training Unit Sennelager", "640"},
	}

	rows := make([]DetachmentRow, 0, len(builtins))
	for _, b := range builtins {
		rows = append(rows, DetachmentRow{
			Group:     DetachmentGroup,
			BoxNumber: b.box,
			Location:  b.location,
			Postcode:  DetachmentPostcode,
			Country:   DetachmentCountry,
		})
	}

	return rows
}

// DefaultConfig returns a configuration with sensible defaults for every
// field the YAML file may omit.
func DefaultConfig() *Config {
	return &Config{
		Sources: SourcesConfig{
			GOVUK: SourceConfig{
				URL: "https://www.gov.uk/bfpo/find-a-bfpo-number",
			},
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		Output: OutputConfig{
			Path:        "bfpo_catalog.xml",
			SchemaRef:   "schemas/bfpo_catalog.xsd",
			PrettyPrint: true,
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowUnmapped: true,
		},
		Detachments: DefaultDetachments(),
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !c.Sources.GOVUK.IsConfigured() {
		return ErrMissingGOVUKSource
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoff
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	for i, row := range c.Detachments {
		if row.Group == "" {
			return fmt.Errorf("%w: detachments[%d]", ErrDetachmentMissingGroup, i)
		}

		if row.BoxNumber == "" {
			return fmt.Errorf("%w: detachments[%d]", ErrDetachmentMissingBox, i)
		}

		if row.Location == "" {
			return fmt.Errorf("%w: detachments[%d]", ErrDetachmentMissingLoc, i)
		}
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	fcdo := "disabled"
	if c.Sources.FCDO.IsConfigured() {
		fcdo = "enabled"
	}

	return fmt.Sprintf(
		"Config{GOVUK: %s, FCDO: %s, Detachments: %d, Output: %s}",
		c.Sources.GOVUK.GetSource(),
		fcdo,
		len(c.Detachments),
		c.Output.Path,
	)
}

// GetSource returns the file path if local, or URL if remote.
func (s *SourceConfig) GetSource() string {
	if s.IsLocalFile() {
		return s.File
	}

	return s.URL
}
