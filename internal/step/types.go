// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package step

import "time"

// Kind identifies a category of workflow step.
type Kind string

const (
	// KindPhase wraps a named unit of caller-supplied work.
	KindPhase Kind = "phase"
	// KindAgent executes a coding agent against a prompt.
	KindAgent Kind = "agent"
	// KindGit performs one of the four git operations.
	KindGit Kind = "git"
	// KindCLI runs a shell command.
	KindCLI Kind = "cli"
	// KindArtifact captures a file produced by earlier steps.
	KindArtifact Kind = "artifact"
	// KindAnnotation posts a human-readable note on the run.
	KindAnnotation Kind = "annotation"
	// KindAI makes a single generative-AI call.
	KindAI Kind = "ai"
)

// TraceEntry records one sub-command executed while performing a step. The
// trace is the primary audit surface: it is populated even when a step fails,
// reflecting what was attempted up to the failure.
type TraceEntry struct {
	Command  string
	Output   string
	ExitCode *int
	Duration time.Duration
}

// Result is the portion shared by every step result. A false Success flag is
// always accompanied by a non-empty Error and a non-empty Trace.
type Result struct {
	Success bool
	Error   string
	Trace   []TraceEntry
}

// PhaseConfig names a unit of caller-supplied work. Phases carry no retry
// policy of their own; retry is the host engine's responsibility.
type PhaseConfig struct {
	Name        string
	Description string
}

// PhaseResult reports the outcome of the wrapped work.
type PhaseResult struct {
	Result
	Name     string
	Duration time.Duration
}

// AgentConfig configures one agent execution step.
type AgentConfig struct {
	Prompt       string
	Agent        string
	Model        string
	SystemPrompt string
	Tools        []string

	// Timeout overrides the kind default when non-zero.
	Timeout time.Duration
}

// AgentResult carries the agent's response and the files it touched.
type AgentResult struct {
	Result
	Output       string
	SessionID    string
	FilesChanged []string
}

// CLIConfig configures one shell execution step.
type CLIConfig struct {
	Command string
	Dir     string
	Env     map[string]string
	Timeout time.Duration
}

// CLIResult carries captured process output.
type CLIResult struct {
	Result
	Stdout   string
	Stderr   string
	ExitCode int
}

// ArtifactConfig configures capture of a file produced during the run.
type ArtifactConfig struct {
	Name        string
	Path        string
	ContentType string
	Timeout     time.Duration
}

// ArtifactResult reports where the artifact was stored.
type ArtifactResult struct {
	Result
	Name string
	Path string
	Size int64
}

// AnnotationLevel grades an annotation.
type AnnotationLevel string

const (
	LevelInfo    AnnotationLevel = "info"
	LevelWarning AnnotationLevel = "warning"
	LevelError   AnnotationLevel = "error"
)

// AnnotationConfig configures a run annotation.
type AnnotationConfig struct {
	Message string
	Level   AnnotationLevel
	Timeout time.Duration
}

// AnnotationResult reports annotation delivery.
type AnnotationResult struct {
	Result
}

// AIConfig configures a single generative-AI call.
type AIConfig struct {
	Prompt    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// AIResult carries the model response.
type AIResult struct {
	Result
	Text       string
	Model      string
	TokensUsed int
}
