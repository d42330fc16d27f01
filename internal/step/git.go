// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package step

import (
	"errors"
	"fmt"
	"time"
)

// Operation discriminates the git step variants. The set is closed; Validate
// rejects anything else.
type Operation string

const (
	// OpCommit stages and commits changes.
	OpCommit Operation = "commit"
	// OpBranch creates a branch off a base branch.
	OpBranch Operation = "branch"
	// OpPullRequest opens a pull request for the current branch.
	OpPullRequest Operation = "pull-request"
	// OpCommitAndBranch atomically creates a branch and commits onto it.
	OpCommitAndBranch Operation = "commit-and-branch"
)

// DefaultCommitMessage is used by the commit-and-branch variant when the
// caller supplies no commit message.
const DefaultCommitMessage = "chore: automated workflow commit"

// GitConfig configures one git step. Operation selects the variant; only the
// fields belonging to the selected variant are consulted.
type GitConfig struct {
	Operation Operation

	// commit, commit-and-branch
	CommitMessage string
	Files         []string

	// branch, commit-and-branch
	Branch     string
	BaseBranch string

	// pull-request
	Title string
	Body  string

	Timeout time.Duration
}

// Validate checks the variant-specific required fields.
func (c *GitConfig) Validate() error {
	switch c.Operation {
	case OpCommit:
		if c.CommitMessage == "" {
			return errors.New("commit operation requires a commit message")
		}
	case OpBranch:
		if c.Branch == "" {
			return errors.New("branch operation requires a branch name")
		}
		if c.BaseBranch == "" {
			return errors.New("branch operation requires a base branch")
		}
	case OpPullRequest:
		if c.Title == "" {
			return errors.New("pull-request operation requires a title")
		}
		if c.Body == "" {
			return errors.New("pull-request operation requires a body")
		}
	case OpCommitAndBranch:
		if c.Branch == "" {
			return errors.New("commit-and-branch operation requires a branch name")
		}
	case "":
		return errors.New("git operation is required")
	default:
		return fmt.Errorf("unknown git operation %q", c.Operation)
	}
	return nil
}

// GitData is the variant payload of a git step result. It is a sealed sum:
// exactly the four operation variants implement it, and the runtime guarantees
// the payload variant always matches the config's Operation.
type GitData interface {
	gitData()
	Operation() Operation
}

// CommitData is the payload of a commit operation.
type CommitData struct {
	CommitHash   string
	FilesChanged int
}

// BranchData is the payload of a branch operation.
type BranchData struct {
	Branch     string
	BaseBranch string
}

// PullRequestData is the payload of a pull-request operation.
type PullRequestData struct {
	URL    string
	Number int
}

// CommitAndBranchData is the payload of an atomic commit-and-branch operation.
type CommitAndBranchData struct {
	Branch        string
	CommitHash    string
	CommitMessage string
}

func (CommitData) gitData()          {}
func (BranchData) gitData()          {}
func (PullRequestData) gitData()     {}
func (CommitAndBranchData) gitData() {}

// Operation reports the variant this payload belongs to.
func (CommitData) Operation() Operation { return OpCommit }

// Operation reports the variant this payload belongs to.
func (BranchData) Operation() Operation { return OpBranch }

// Operation reports the variant this payload belongs to.
func (PullRequestData) Operation() Operation { return OpPullRequest }

// Operation reports the variant this payload belongs to.
func (CommitAndBranchData) Operation() Operation { return OpCommitAndBranch }

// GitResult is the outcome of one git step. Data is nil when the step failed
// before producing variant output; the trace still reflects what was
// attempted.
type GitResult struct {
	Result
	Data GitData
}
