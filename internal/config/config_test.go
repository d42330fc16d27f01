// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentcmd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom_FullConfig(t *testing.T) {
	path := writeConfig(t, `
commands:
  dir: docs/commands
  output: src/generated/commands.d.ts
workflow:
  task_queue: release-queue
  namespace: ci
timeouts:
  agent: 45m
  cli: 90s
`)

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "docs/commands", cfg.Commands.Dir)
	assert.Equal(t, "src/generated/commands.d.ts", cfg.Commands.Output)
	assert.Equal(t, "release-queue", cfg.Workflow.TaskQueue)
	assert.Equal(t, "ci", cfg.Workflow.Namespace)
	assert.Equal(t, Duration(45*time.Minute), cfg.Timeouts.Agent)
	assert.Equal(t, Duration(90*time.Second), cfg.Timeouts.CLI)
	assert.Zero(t, cfg.Timeouts.Git)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "commands:\n  dir: my-commands\n")

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "my-commands", cfg.Commands.Dir)
	assert.Equal(t, DefaultOutputPath, cfg.Commands.Output)
	assert.Equal(t, DefaultTaskQueue, cfg.Workflow.TaskQueue)
	assert.Equal(t, DefaultNamespace, cfg.Workflow.Namespace)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "commands: [broken\n")

	_, err := LoadFrom(path)

	assert.Error(t, err)
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	path := writeConfig(t, "timeouts:\n  agent: soon\n")

	_, err := LoadFrom(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}
