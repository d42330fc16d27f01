package step

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"
)

func newEnv() *testsuite.TestWorkflowEnvironment {
	s := &testsuite.WorkflowTestSuite{}
	return s.NewTestWorkflowEnvironment()
}

func runStepWorkflow(t *testing.T, env *testsuite.TestWorkflowEnvironment, fn Func) error {
	t.Helper()
	wf, err := NewWorkflow(Config{Name: "test-workflow", TaskQueue: "test"}, fn)
	require.NoError(t, err)

	env.ExecuteWorkflow(wf)
	require.True(t, env.IsWorkflowCompleted())
	return env.GetWorkflowError()
}

func intPtr(v int) *int { return &v }

func registerBranchStub(env *testsuite.TestWorkflowEnvironment) {
	env.RegisterActivityWithOptions(
		func(ctx context.Context, in GitBranchInput) (GitBranchOutput, error) {
			return GitBranchOutput{
				Branch:     in.Branch,
				BaseBranch: in.BaseBranch,
				Trace: []TraceEntry{
					{Command: "git checkout -b " + in.Branch, ExitCode: intPtr(0)},
				},
			}, nil
		},
		activity.RegisterOptions{Name: ActivityGitBranch},
	)
}

func TestGitStep_Commit(t *testing.T) {
	env := newEnv()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, in GitCommitInput) (GitCommitOutput, error) {
			return GitCommitOutput{
				CommitHash:   "abc123",
				FilesChanged: 2,
				Trace: []TraceEntry{
					{Command: "git add .", ExitCode: intPtr(0)},
					{Command: "git commit -m " + in.Message, ExitCode: intPtr(0)},
				},
			}, nil
		},
		activity.RegisterOptions{Name: ActivityGitCommit},
	)

	var res *GitResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Git(ctx, GitConfig{Operation: OpCommit, CommitMessage: "fix: thing"})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	require.Len(t, res.Trace, 2)

	data, ok := res.Data.(CommitData)
	require.True(t, ok)
	assert.Equal(t, OpCommit, data.Operation())
	assert.Equal(t, "abc123", data.CommitHash)
	assert.Equal(t, 2, data.FilesChanged)
}

func TestGitStep_CommitAndBranch_DefaultMessage(t *testing.T) {
	env := newEnv()
	registerBranchStub(env)

	var receivedMessage string
	env.RegisterActivityWithOptions(
		func(ctx context.Context, in GitCommitInput) (GitCommitOutput, error) {
			receivedMessage = in.Message
			return GitCommitOutput{
				CommitHash: "def456",
				Trace:      []TraceEntry{{Command: "git commit -m " + in.Message, ExitCode: intPtr(0)}},
			}, nil
		},
		activity.RegisterOptions{Name: ActivityGitCommit},
	)

	var res *GitResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Git(ctx, GitConfig{
			Operation:  OpCommitAndBranch,
			Branch:     "feature/login",
			BaseBranch: "main",
			// No CommitMessage: the fixed placeholder applies.
		})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, DefaultCommitMessage, receivedMessage)

	data, ok := res.Data.(CommitAndBranchData)
	require.True(t, ok)
	assert.Equal(t, "feature/login", data.Branch)
	assert.Equal(t, "def456", data.CommitHash)
	assert.Equal(t, DefaultCommitMessage, data.CommitMessage)

	// Traces from both halves, branch first.
	require.Len(t, res.Trace, 2)
	assert.Contains(t, res.Trace[0].Command, "checkout -b feature/login")
	assert.Contains(t, res.Trace[1].Command, "commit")
}

func TestGitStep_PartialTraceOnCommitFailure(t *testing.T) {
	env := newEnv()
	registerBranchStub(env)
	env.RegisterActivityWithOptions(
		func(ctx context.Context, in GitCommitInput) (GitCommitOutput, error) {
			return GitCommitOutput{}, errors.New("nothing to commit")
		},
		activity.RegisterOptions{Name: ActivityGitCommit},
	)

	var res *GitResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Git(ctx, GitConfig{Operation: OpCommitAndBranch, Branch: "feature/x"})
		assert.Error(t, stepErr)
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Nil(t, res.Data)

	// The branch half is still on record.
	require.NotEmpty(t, res.Trace)
	assert.Contains(t, res.Trace[0].Command, "checkout -b feature/x")
}

func TestGitStep_InvalidConfigRejectedBeforeDispatch(t *testing.T) {
	env := newEnv()

	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		res, stepErr := rt.Git(ctx, GitConfig{Operation: OpPullRequest})
		assert.Nil(t, res)
		assert.Error(t, stepErr)
		assert.Contains(t, stepErr.Error(), "title")
		return nil
	})

	require.NoError(t, err)
}

func TestPhaseStep(t *testing.T) {
	env := newEnv()

	var res *PhaseResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Phase(ctx, PhaseConfig{Name: "setup", Description: "prepare workspace"},
			func(workflow.Context) error { return nil })
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, "setup", res.Name)
}

func TestPhaseStep_FailurePropagates(t *testing.T) {
	env := newEnv()

	var res *PhaseResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Phase(ctx, PhaseConfig{Name: "build"},
			func(workflow.Context) error { return errors.New("compile failed") })
		assert.Error(t, stepErr)
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.Equal(t, "compile failed", res.Error)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, "build", res.Trace[0].Command)
	assert.Equal(t, "compile failed", res.Trace[0].Output)
}

func TestCLIStep(t *testing.T) {
	env := newEnv()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg CLIConfig) (CLIOutput, error) {
			return CLIOutput{
				Stdout:   "ok\n",
				ExitCode: 0,
				Trace:    []TraceEntry{{Command: cfg.Command, Output: "ok\n", ExitCode: intPtr(0)}},
			}, nil
		},
		activity.RegisterOptions{Name: ActivityCLIRun},
	)

	var res *CLIResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.CLI(ctx, CLIConfig{Command: "go test ./..."})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, "ok\n", res.Stdout)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, "go test ./...", res.Trace[0].Command)
}

func TestCLIStep_FailureSynthesizesTrace(t *testing.T) {
	env := newEnv()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg CLIConfig) (CLIOutput, error) {
			return CLIOutput{}, errors.New("command not found")
		},
		activity.RegisterOptions{Name: ActivityCLIRun},
	)

	var res *CLIResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.CLI(ctx, CLIConfig{Command: "frobnicate"})
		assert.Error(t, stepErr)
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	// Never a silent failure: the attempt itself is on record.
	require.Len(t, res.Trace, 1)
	assert.Equal(t, "frobnicate", res.Trace[0].Command)
}

func TestAgentStep(t *testing.T) {
	env := newEnv()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg AgentConfig) (AgentOutput, error) {
			return AgentOutput{
				Output:       "done",
				SessionID:    "sess-1",
				FilesChanged: []string{"main.go"},
				Trace:        []TraceEntry{{Command: "agent run", Output: "done"}},
			}, nil
		},
		activity.RegisterOptions{Name: ActivityAgentExecute},
	)

	var res *AgentResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Agent(ctx, AgentConfig{Prompt: "implement login", Agent: "build"})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, "done", res.Output)
	assert.Equal(t, []string{"main.go"}, res.FilesChanged)
}

func TestAnnotationStep_DefaultsToInfoLevel(t *testing.T) {
	env := newEnv()

	var receivedLevel AnnotationLevel
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg AnnotationConfig) (AnnotationOutput, error) {
			receivedLevel = cfg.Level
			return AnnotationOutput{Trace: []TraceEntry{{Command: "annotate"}}}, nil
		},
		activity.RegisterOptions{Name: ActivityAnnotationPost},
	)

	var res *AnnotationResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.Annotation(ctx, AnnotationConfig{Message: "phase complete"})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, LevelInfo, receivedLevel)
}

func TestAIStep(t *testing.T) {
	env := newEnv()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg AIConfig) (AIOutput, error) {
			return AIOutput{Text: "summary", Model: cfg.Model, TokensUsed: 12}, nil
		},
		activity.RegisterOptions{Name: ActivityAIGenerate},
	)

	var res *AIResult
	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		var stepErr error
		res, stepErr = rt.AI(ctx, AIConfig{Prompt: "summarize", Model: "gpt-test"})
		return stepErr
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, "summary", res.Text)
	assert.Equal(t, 12, res.TokensUsed)
}

func TestStepOrdering_FollowsCallOrder(t *testing.T) {
	env := newEnv()

	var order []string
	env.RegisterActivityWithOptions(
		func(ctx context.Context, cfg CLIConfig) (CLIOutput, error) {
			order = append(order, cfg.Command)
			return CLIOutput{Trace: []TraceEntry{{Command: cfg.Command}}}, nil
		},
		activity.RegisterOptions{Name: ActivityCLIRun},
	)

	err := runStepWorkflow(t, env, func(ctx workflow.Context, rt *Runtime) error {
		for _, cmd := range []string{"first", "second", "third"} {
			if _, stepErr := rt.CLI(ctx, CLIConfig{Command: cmd}); stepErr != nil {
				return stepErr
			}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}
