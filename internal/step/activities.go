// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package step

// Activity names the runtime dispatches step calls to. The host engine
// registers implementations under these names at the worker boundary; none
// ship with this module.
const (
	ActivityAgentExecute    = "agent.execute"
	ActivityGitCommit       = "git.commit"
	ActivityGitBranch       = "git.branch"
	ActivityGitPullRequest  = "git.pull-request"
	ActivityCLIRun          = "cli.run"
	ActivityArtifactCapture = "artifact.capture"
	ActivityAnnotationPost  = "annotation.post"
	ActivityAIGenerate      = "ai.generate"
)

// GitCommitInput is the engine-side input of the git.commit activity.
type GitCommitInput struct {
	Message string
	Files   []string
}

// GitCommitOutput is the engine-side output of the git.commit activity.
type GitCommitOutput struct {
	CommitHash   string
	FilesChanged int
	Trace        []TraceEntry
}

// GitBranchInput is the engine-side input of the git.branch activity.
type GitBranchInput struct {
	Branch     string
	BaseBranch string
}

// GitBranchOutput is the engine-side output of the git.branch activity.
type GitBranchOutput struct {
	Branch     string
	BaseBranch string
	Trace      []TraceEntry
}

// GitPullRequestInput is the engine-side input of the git.pull-request
// activity.
type GitPullRequestInput struct {
	Title string
	Body  string
}

// GitPullRequestOutput is the engine-side output of the git.pull-request
// activity.
type GitPullRequestOutput struct {
	URL    string
	Number int
	Trace  []TraceEntry
}

// AgentOutput is the engine-side output of the agent.execute activity; its
// input is the AgentConfig itself.
type AgentOutput struct {
	Output       string
	SessionID    string
	FilesChanged []string
	Trace        []TraceEntry
}

// CLIOutput is the engine-side output of the cli.run activity; its input is
// the CLIConfig itself.
type CLIOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Trace    []TraceEntry
}

// ArtifactOutput is the engine-side output of the artifact.capture activity;
// its input is the ArtifactConfig itself.
type ArtifactOutput struct {
	Path  string
	Size  int64
	Trace []TraceEntry
}

// AnnotationOutput is the engine-side output of the annotation.post activity;
// its input is the AnnotationConfig itself.
type AnnotationOutput struct {
	Trace []TraceEntry
}

// AIOutput is the engine-side output of the ai.generate activity; its input
// is the AIConfig itself.
type AIOutput struct {
	Text       string
	Model      string
	TokensUsed int
	Trace      []TraceEntry
}
