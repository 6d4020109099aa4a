package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"github.com/mimeset/mimeset/pkg/env"
)

// Config represents the complete mimeset configuration
type Config struct {
	Uploader    UploaderConfig    `yaml:"uploader"`
	ContentType ContentTypeConfig `yaml:"content_type"`
	Store       StoreConfig       `yaml:"store,omitempty"`
	Release     ReleaseConfig     `yaml:"release,omitempty"`
}

// UploaderConfig names the uploader; the name prefixes stored object keys
type UploaderConfig struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix,omitempty"`
}

// ContentTypeConfig controls how content types are assigned
type ContentTypeConfig struct {
	// Override re-resolves the type even when a specific one was declared
	Override bool `yaml:"override"`
	// Sniff inspects file content when the filename lookup finds nothing
	Sniff bool `yaml:"sniff"`
	// SystemTypes disables the operating system MIME table when set to false
	SystemTypes *bool      `yaml:"system_types,omitempty"`
	Types       []TypeRule `yaml:"types,omitempty"`
}

// TypeRule maps a file extension to a media type, checked before the built-in tables
type TypeRule struct {
	Extension string `yaml:"extension"`
	Type      string `yaml:"type"`
}

// UseSystemTypes reports whether the system MIME table is consulted (default true)
func (c ContentTypeConfig) UseSystemTypes() bool {
	return c.SystemTypes == nil || *c.SystemTypes
}

// StoreConfig contains storage destinations
type StoreConfig struct {
	S3 S3Config `yaml:"s3,omitempty"`
}

// S3Config contains S3 (or S3-compatible) bucket settings.
// Leave Credentials empty to use the default AWS credential chain.
type S3Config struct {
	Bucket      string        `yaml:"bucket"`
	Region      string        `yaml:"region"`
	Prefix      string        `yaml:"prefix,omitempty"`
	Endpoint    string        `yaml:"endpoint,omitempty"`
	Credentials S3Credentials `yaml:"credentials,omitempty"`
}

// S3Credentials contains static S3 credentials
type S3Credentials struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// ReleaseConfig contains release destinations
type ReleaseConfig struct {
	GitHub GitHubConfig `yaml:"github,omitempty"`
}

// GitHubConfig contains GitHub release asset settings
type GitHubConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Tag   string `yaml:"tag"`
	Token string `yaml:"token"`
	Draft bool   `yaml:"draft"`
}

// DefaultPath is the config file used when --config is not given
const DefaultPath = ".mimeset.yaml"

// maxConfigSize bounds the config file size (1MB)
const maxConfigSize = 1024 * 1024

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	cleanPath, err := validateConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := readConfigFile(cleanPath)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// LoadOrDefault loads path when it exists and returns an empty configuration
// otherwise. Any other error is returned as is.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &Config{}, false, nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Parse decodes YAML data, substituting env(VAR) references in values first.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, fmt.Errorf("failed to parse config: empty document")
	}

	body := file.Docs[0].Body
	if err := env.SubstituteEnvVarsNode(body); err != nil {
		return nil, fmt.Errorf("environment variable substitution failed: %w", err)
	}

	var cfg Config
	if err := yaml.NodeToValue(body, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg to path with owner-only permissions, since the
// file may hold credentials
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// validateConfigPath rejects relative paths that climb out of the working
// directory. Absolute paths outside it are allowed.
func validateConfigPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	cleanPath := filepath.Clean(absPath)

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	wd = filepath.Clean(wd)

	if cleanPath != wd && !strings.HasPrefix(cleanPath, wd+string(filepath.Separator)) {
		return cleanPath, nil
	}

	rel, err := filepath.Rel(wd, cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid config path: %w", err)
	}
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("invalid config path: path traversal detected")
	}
	return cleanPath, nil
}

func readConfigFile(cleanPath string) ([]byte, error) {
	// Stat follows symlinks, so a link to a regular file is accepted
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: maximum size is 1MB")
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}
