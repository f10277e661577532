package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/poiesic/rinkside/search"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config as it appears on disk. Pointer fields tell
// "absent" apart from an explicit zero so absent keys keep their defaults.
type fileConfig struct {
	Delay          *string  `yaml:"delay" toml:"delay"`
	Fields         []string `yaml:"fields" toml:"fields"`
	MatchMode      *string  `yaml:"match_mode" toml:"match_mode"`
	MinWordLength  *int     `yaml:"min_word_length" toml:"min_word_length"`
	Locale         *string  `yaml:"locale" toml:"locale"`
	FoldHomoglyphs *bool    `yaml:"fold_homoglyphs" toml:"fold_homoglyphs"`
	FoldDiacritics *bool    `yaml:"fold_diacritics" toml:"fold_diacritics"`
	RequiredFields []string `yaml:"required_fields" toml:"required_fields"`
	PoolSize       *int     `yaml:"pool_size" toml:"pool_size"`
	Dedupe         *bool    `yaml:"dedupe" toml:"dedupe"`
}

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig and validates the result. Delay is a Go duration string
// such as "250ms".
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		_, err = toml.Decode(string(data), &fc)
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if err := fc.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Delay != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*fc.Delay))
		if err != nil {
			return fmt.Errorf("%w: delay: %w", ErrInvalidConfig, err)
		}
		cfg.Delay = d
	}
	if fc.Fields != nil {
		cfg.Fields = fc.Fields
	}
	if fc.MatchMode != nil {
		cfg.MatchMode = search.MatchMode(*fc.MatchMode)
	}
	if fc.MinWordLength != nil {
		cfg.MinWordLength = *fc.MinWordLength
	}
	if fc.Locale != nil {
		cfg.Locale = *fc.Locale
	}
	if fc.FoldHomoglyphs != nil {
		cfg.FoldHomoglyphs = *fc.FoldHomoglyphs
	}
	if fc.FoldDiacritics != nil {
		cfg.FoldDiacritics = *fc.FoldDiacritics
	}
	if fc.RequiredFields != nil {
		cfg.RequiredFields = fc.RequiredFields
	}
	if fc.PoolSize != nil {
		cfg.PoolSize = *fc.PoolSize
	}
	if fc.Dedupe != nil {
		cfg.Dedupe = *fc.Dedupe
	}
	return nil
}
