package step

import (
	"errors"

	"go.temporal.io/sdk/workflow"
)

// Runtime is the step surface handed to workflow functions. Every method maps
// one step call onto a named activity supplied by the host engine. Each call
// produces a freshly owned result value; within one workflow function, step
// calls execute in the order the caller awaits them.
type Runtime struct{}

// NewRuntime returns a Runtime ready to dispatch step calls.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Phase wraps a named unit of caller-supplied work. It is the only step kind
// that runs arbitrary workflow code instead of delegating to a fixed activity,
// so it carries no retry policy of its own.
func (r *Runtime) Phase(ctx workflow.Context, cfg PhaseConfig, fn func(workflow.Context) error) (*PhaseResult, error) {
	if cfg.Name == "" {
		return nil, errors.New("phase name is required")
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Entering phase", "phase", cfg.Name)

	start := workflow.Now(ctx)
	err := fn(ctx)

	res := &PhaseResult{
		Name:     cfg.Name,
		Duration: workflow.Now(ctx).Sub(start),
	}
	if err != nil {
		logger.Error("Phase failed", "phase", cfg.Name, "error", err)
		return res, failStep(&res.Result, cfg.Name, err)
	}

	res.Success = true
	logger.Info("Phase complete", "phase", cfg.Name, "duration", res.Duration)
	return res, nil
}

// Agent executes a coding agent against a prompt.
func (r *Runtime) Agent(ctx workflow.Context, cfg AgentConfig) (*AgentResult, error) {
	if cfg.Prompt == "" {
		return nil, errors.New("agent prompt is required")
	}
	ctx = withStepOptions(ctx, KindAgent, cfg.Timeout)

	var out AgentOutput
	err := workflow.ExecuteActivity(ctx, ActivityAgentExecute, cfg).Get(ctx, &out)

	res := &AgentResult{
		Output:       out.Output,
		SessionID:    out.SessionID,
		FilesChanged: out.FilesChanged,
	}
	res.Trace = out.Trace
	if err != nil {
		return res, failStep(&res.Result, ActivityAgentExecute, err)
	}

	res.Success = true
	return res, nil
}

// Git performs one of the four git operations. The result payload variant
// always matches cfg.Operation; commit-and-branch composes the branch and
// commit activities, merging their traces.
func (r *Runtime) Git(ctx workflow.Context, cfg GitConfig) (*GitResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx = withStepOptions(ctx, KindGit, cfg.Timeout)
	logger := workflow.GetLogger(ctx)

	res := &GitResult{}
	switch cfg.Operation {
	case OpCommit:
		var out GitCommitOutput
		err := workflow.ExecuteActivity(ctx, ActivityGitCommit, GitCommitInput{
			Message: cfg.CommitMessage,
			Files:   cfg.Files,
		}).Get(ctx, &out)
		res.Trace = append(res.Trace, out.Trace...)
		if err != nil {
			return res, failStep(&res.Result, ActivityGitCommit, err)
		}
		res.Data = CommitData{CommitHash: out.CommitHash, FilesChanged: out.FilesChanged}

	case OpBranch:
		var out GitBranchOutput
		err := workflow.ExecuteActivity(ctx, ActivityGitBranch, GitBranchInput{
			Branch:     cfg.Branch,
			BaseBranch: cfg.BaseBranch,
		}).Get(ctx, &out)
		res.Trace = append(res.Trace, out.Trace...)
		if err != nil {
			return res, failStep(&res.Result, ActivityGitBranch, err)
		}
		res.Data = BranchData{Branch: out.Branch, BaseBranch: out.BaseBranch}

	case OpPullRequest:
		var out GitPullRequestOutput
		err := workflow.ExecuteActivity(ctx, ActivityGitPullRequest, GitPullRequestInput{
			Title: cfg.Title,
			Body:  cfg.Body,
		}).Get(ctx, &out)
		res.Trace = append(res.Trace, out.Trace...)
		if err != nil {
			return res, failStep(&res.Result, ActivityGitPullRequest, err)
		}
		res.Data = PullRequestData{URL: out.URL, Number: out.Number}

	case OpCommitAndBranch:
		message := cfg.CommitMessage
		if message == "" {
			message = DefaultCommitMessage
		}

		var branchOut GitBranchOutput
		err := workflow.ExecuteActivity(ctx, ActivityGitBranch, GitBranchInput{
			Branch:     cfg.Branch,
			BaseBranch: cfg.BaseBranch,
		}).Get(ctx, &branchOut)
		res.Trace = append(res.Trace, branchOut.Trace...)
		if err != nil {
			return res, failStep(&res.Result, ActivityGitBranch, err)
		}

		var commitOut GitCommitOutput
		err = workflow.ExecuteActivity(ctx, ActivityGitCommit, GitCommitInput{
			Message: message,
			Files:   cfg.Files,
		}).Get(ctx, &commitOut)
		res.Trace = append(res.Trace, commitOut.Trace...)
		if err != nil {
			// Partial trace: the branch half is already recorded.
			return res, failStep(&res.Result, ActivityGitCommit, err)
		}
		res.Data = CommitAndBranchData{
			Branch:        branchOut.Branch,
			CommitHash:    commitOut.CommitHash,
			CommitMessage: message,
		}
	}

	res.Success = true
	logger.Info("Git step complete", "operation", cfg.Operation)
	return res, nil
}

// CLI runs a shell command through the host engine.
func (r *Runtime) CLI(ctx workflow.Context, cfg CLIConfig) (*CLIResult, error) {
	if cfg.Command == "" {
		return nil, errors.New("cli command is required")
	}
	ctx = withStepOptions(ctx, KindCLI, cfg.Timeout)

	var out CLIOutput
	err := workflow.ExecuteActivity(ctx, ActivityCLIRun, cfg).Get(ctx, &out)

	res := &CLIResult{Stdout: out.Stdout, Stderr: out.Stderr, ExitCode: out.ExitCode}
	res.Trace = out.Trace
	if err != nil {
		return res, failStep(&res.Result, cfg.Command, err)
	}

	res.Success = true
	return res, nil
}

// Artifact captures a file produced during the run.
func (r *Runtime) Artifact(ctx workflow.Context, cfg ArtifactConfig) (*ArtifactResult, error) {
	if cfg.Name == "" || cfg.Path == "" {
		return nil, errors.New("artifact name and path are required")
	}
	ctx = withStepOptions(ctx, KindArtifact, cfg.Timeout)

	var out ArtifactOutput
	err := workflow.ExecuteActivity(ctx, ActivityArtifactCapture, cfg).Get(ctx, &out)

	res := &ArtifactResult{Name: cfg.Name, Path: out.Path, Size: out.Size}
	res.Trace = out.Trace
	if err != nil {
		return res, failStep(&res.Result, ActivityArtifactCapture, err)
	}

	res.Success = true
	return res, nil
}

// Annotation posts a human-readable note on the run.
func (r *Runtime) Annotation(ctx workflow.Context, cfg AnnotationConfig) (*AnnotationResult, error) {
	if cfg.Message == "" {
		return nil, errors.New("annotation message is required")
	}
	if cfg.Level == "" {
		cfg.Level = LevelInfo
	}
	ctx = withStepOptions(ctx, KindAnnotation, cfg.Timeout)

	var out AnnotationOutput
	err := workflow.ExecuteActivity(ctx, ActivityAnnotationPost, cfg).Get(ctx, &out)

	res := &AnnotationResult{}
	res.Trace = out.Trace
	if err != nil {
		return res, failStep(&res.Result, ActivityAnnotationPost, err)
	}

	res.Success = true
	return res, nil
}

// AI makes a single generative-AI call.
func (r *Runtime) AI(ctx workflow.Context, cfg AIConfig) (*AIResult, error) {
	if cfg.Prompt == "" {
		return nil, errors.New("ai prompt is required")
	}
	ctx = withStepOptions(ctx, KindAI, cfg.Timeout)

	var out AIOutput
	err := workflow.ExecuteActivity(ctx, ActivityAIGenerate, cfg).Get(ctx, &out)

	res := &AIResult{Text: out.Text, Model: out.Model, TokensUsed: out.TokensUsed}
	res.Trace = out.Trace
	if err != nil {
		return res, failStep(&res.Result, ActivityAIGenerate, err)
	}

	res.Success = true
	return res, nil
}

// failStep marks a shared result as failed. When the engine returned no trace
// of its own, a synthetic entry records what was attempted so the trace is
// never empty on failure.
func failStep(res *Result, attempted string, err error) error {
	res.Success = false
	res.Error = err.Error()
	if len(res.Trace) == 0 {
		res.Trace = []TraceEntry{{Command: attempted, Output: err.Error()}}
	}
	return err
}
