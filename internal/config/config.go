// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultCommandsDir = ".agentcmd/commands"
	DefaultOutputPath  = "generated/commands.d.ts"
	DefaultTaskQueue   = "agentcmd"
	DefaultNamespace   = "default"
)

// Duration wraps time.Duration with YAML support for strings like "5m".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the project configuration loaded from .agentcmd/agentcmd.yaml.
type Config struct {
	Commands CommandsConfig `yaml:"commands"`
	Workflow WorkflowConfig `yaml:"workflow"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

// CommandsConfig locates command documents and the generated output.
type CommandsConfig struct {
	// Dir is the directory holding command documents.
	Dir string `yaml:"dir"`
	// Output is where the caller persists generated declarations.
	Output string `yaml:"output"`
}

// WorkflowConfig holds engine connection settings for workflow workers.
type WorkflowConfig struct {
	TaskQueue string `yaml:"task_queue"`
	Namespace string `yaml:"namespace"`
}

// TimeoutsConfig overrides per-kind step timeouts. Zero values fall through
// to the contract defaults.
type TimeoutsConfig struct {
	Agent Duration `yaml:"agent"`
	AI    Duration `yaml:"ai"`
	CLI   Duration `yaml:"cli"`
	Git   Duration `yaml:"git"`
}

// Load loads the configuration from .agentcmd/agentcmd.yaml under the current
// working directory.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadFrom(filepath.Join(cwd, ".agentcmd", "agentcmd.yaml"))
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Commands.Dir == "" {
		c.Commands.Dir = DefaultCommandsDir
	}
	if c.Commands.Output == "" {
		c.Commands.Output = DefaultOutputPath
	}
	if c.Workflow.TaskQueue == "" {
		c.Workflow.TaskQueue = DefaultTaskQueue
	}
	if c.Workflow.Namespace == "" {
		c.Workflow.Namespace = DefaultNamespace
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Commands.Dir == "" {
		return fmt.Errorf("commands dir is required")
	}
	if c.Commands.Output == "" {
		return fmt.Errorf("commands output is required")
	}
	if c.Workflow.TaskQueue == "" {
		return fmt.Errorf("workflow task queue is required")
	}
	return nil
}
