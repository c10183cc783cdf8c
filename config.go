package bfsim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	bf "nickandperla.net/bfsim/brainfuck"
)

type ToolConfig struct {
	LogLevel    string             `toml:"log_level" yaml:"log_level"`
	Workers     uint               `toml:"workers" yaml:"workers"`
	Machine     *bf.MachineConfig  `toml:"machine" yaml:"machine"`
	Persistence *PersistenceConfig `toml:"persistence" yaml:"persistence"`
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		LogLevel: DEFAULT_LOG_LEVEL,
		Workers:  DEFAULT_WORKERS,
		Machine:  bf.DefaultMachineConfig(),
		Persistence: &PersistenceConfig{
			Name: DEFAULT_JOURNAL_NAME,
			Path: ".",
		},
	}
}

// LoadToolConfig reads a TOML or YAML config, picked by file extension.
// Anything the file leaves out keeps its default.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := DefaultToolConfig()
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	config.fillDefaults()
	return config, nil
}

func (c *ToolConfig) fillDefaults() {
	defaults := DefaultToolConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
	if c.Machine == nil {
		c.Machine = defaults.Machine
	}
	if c.Machine.MemoryConfig == nil {
		c.Machine.MemoryConfig = defaults.Machine.MemoryConfig
	}
	if c.Persistence == nil {
		c.Persistence = defaults.Persistence
	}
	if c.Persistence.Name == "" {
		c.Persistence.Name = defaults.Persistence.Name
	}
	if c.Persistence.Path == "" {
		c.Persistence.Path = defaults.Persistence.Path
	}
}

func decodeFile(path string, v interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, v); err != nil {
			return fmt.Errorf("Failed to unmarshal %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.UnmarshalStrict(data, v); err != nil {
			return fmt.Errorf("Failed to unmarshal %s: %w", path, err)
		}
	default:
		return fmt.Errorf("Unknown config format [%s], expected .toml, .yaml or .yml", filepath.Ext(path))
	}
	return nil
}
