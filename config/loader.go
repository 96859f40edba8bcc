package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/lexcrawl/lexcrawl"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".lexcrawl.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// fileConfig mirrors Config for YAML decoding. Durations are strings in
// Go duration syntax ("1.5s", "250ms") since yaml.v3 has no native
// time.Duration support. Pointer fields distinguish "absent" from
// zero-valued so the file only overrides what it mentions.
type fileConfig struct {
	Endpoint          *string  `yaml:"endpoint"`
	QueryParam        *string  `yaml:"query_param"`
	Alphabet          *string  `yaml:"alphabet"`
	Concurrency       *int     `yaml:"concurrency"`
	RequestsPerSecond *float64 `yaml:"requests_per_second"`
	Jitter            *string  `yaml:"jitter"`
	BaseDelay         *string  `yaml:"base_delay"`
	CapDelay          *string  `yaml:"cap_delay"`
	MaxRetries        *int     `yaml:"max_retries"`
	DepthThreshold    *int     `yaml:"depth_threshold"`
	ShallowThreshold  *int     `yaml:"shallow_threshold"`
	ResultCap         *int     `yaml:"result_cap"`
	ProbeSample       *int     `yaml:"probe_sample"`
	CheckpointEvery   *int     `yaml:"checkpoint_every"`
	Timeout           *string  `yaml:"timeout"`
	Database          *string  `yaml:"database"`
	Output            *string  `yaml:"output"`
	Verbose           *bool    `yaml:"verbose"`
}

// Load reads a YAML configuration file and applies it over cfg.
// Returns ErrConfigNotFound if the file does not exist; callers decide
// whether that matters based on whether the path was explicit.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return lexcrawl.Errorf(lexcrawl.EINVALID, "parse config file %q: %v", path, err)
	}
	return fc.apply(path, cfg)
}

func (fc *fileConfig) apply(path string, cfg *Config) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setDuration := func(dst *time.Duration, src *string, field string) error {
		if src == nil {
			return nil
		}
		d, err := time.ParseDuration(*src)
		if err != nil {
			return lexcrawl.Errorf(lexcrawl.EINVALID, "config file %q: invalid %s %q", path, field, *src)
		}
		*dst = d
		return nil
	}

	setString(&cfg.Endpoint, fc.Endpoint)
	setString(&cfg.QueryParam, fc.QueryParam)
	setString(&cfg.Alphabet, fc.Alphabet)
	setString(&cfg.Database, fc.Database)
	setString(&cfg.Output, fc.Output)
	setInt(&cfg.Concurrency, fc.Concurrency)
	setInt(&cfg.MaxRetries, fc.MaxRetries)
	setInt(&cfg.DepthThreshold, fc.DepthThreshold)
	setInt(&cfg.ShallowThreshold, fc.ShallowThreshold)
	setInt(&cfg.ResultCap, fc.ResultCap)
	setInt(&cfg.ProbeSample, fc.ProbeSample)
	setInt(&cfg.CheckpointEvery, fc.CheckpointEvery)
	if fc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *fc.RequestsPerSecond
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if err := setDuration(&cfg.Jitter, fc.Jitter, "jitter"); err != nil {
		return err
	}
	if err := setDuration(&cfg.BaseDelay, fc.BaseDelay, "base_delay"); err != nil {
		return err
	}
	if err := setDuration(&cfg.CapDelay, fc.CapDelay, "cap_delay"); err != nil {
		return err
	}
	return setDuration(&cfg.Timeout, fc.Timeout, "timeout")
}

// FindConfigFile locates the configuration file:
//  1. an explicitly given path is used directly
//  2. DefaultConfigFile in the current directory
//  3. DefaultConfigFile in the user's home directory
//
// Returns the empty string if nothing is found.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
