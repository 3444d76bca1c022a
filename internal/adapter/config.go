package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	m "github.com/mouse-blink/cpre/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = ".cpre.yaml"

// Config holds the run settings read from a YAML file.
type Config struct {
	Define     []string `yaml:"define"`
	Undefine   []string `yaml:"undefine"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Parallel   int      `yaml:"parallel"`
}

// ConfigLoader reads run settings.
type ConfigLoader interface {
	// Load reads the config at path. An empty path loads DefaultConfigFile
	// if it exists and returns an empty Config otherwise.
	Load(path m.Path) (*Config, error)
}

// YAMLConfigLoader loads Config from YAML files.
type YAMLConfigLoader struct{}

// NewYAMLConfigLoader constructs a YAMLConfigLoader.
func NewYAMLConfigLoader() *YAMLConfigLoader {
	return &YAMLConfigLoader{}
}

// Load implements ConfigLoader.
func (l *YAMLConfigLoader) Load(path m.Path) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML config data. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.New(yaml.FormatError(err, false, true))
	}

	if cfg.Parallel < 0 {
		return nil, fmt.Errorf("parallel must not be negative, got %d", cfg.Parallel)
	}

	return cfg, nil
}
