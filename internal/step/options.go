// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package step

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// Per-kind default timeouts. Agent and AI calls can run for many minutes;
// shell and git operations are expected to finish quickly.
const (
	DefaultAgentTimeout      = 30 * time.Minute
	DefaultAITimeout         = 10 * time.Minute
	DefaultCLITimeout        = 5 * time.Minute
	DefaultGitTimeout        = 2 * time.Minute
	DefaultArtifactTimeout   = 1 * time.Minute
	DefaultAnnotationTimeout = 30 * time.Second

	// DefaultHeartbeatTimeout applies to long-running agent and AI
	// activities, which heartbeat while waiting on the model.
	DefaultHeartbeatTimeout = 2 * time.Minute

	// RepeatableMaxAttempts is the retry count for annotation and artifact
	// steps, which are safe to repeat.
	RepeatableMaxAttempts = 3
)

// DefaultTimeout returns the default start-to-close timeout for a step kind.
func DefaultTimeout(kind Kind) time.Duration {
	switch kind {
	case KindAgent:
		return DefaultAgentTimeout
	case KindAI:
		return DefaultAITimeout
	case KindGit:
		return DefaultGitTimeout
	case KindArtifact:
		return DefaultArtifactTimeout
	case KindAnnotation:
		return DefaultAnnotationTimeout
	default:
		return DefaultCLITimeout
	}
}

// ActivityOptions returns the activity options for one step call. A non-zero
// override takes precedence over the kind default. Non-idempotent kinds are
// never retried automatically; annotation and artifact steps are.
func ActivityOptions(kind Kind, override time.Duration) workflow.ActivityOptions {
	timeout := DefaultTimeout(kind)
	if override > 0 {
		timeout = override
	}

	attempts := int32(1)
	if kind == KindAnnotation || kind == KindArtifact {
		attempts = RepeatableMaxAttempts
	}

	opts := workflow.ActivityOptions{
		StartToCloseTimeout: timeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: attempts,
		},
	}
	if kind == KindAgent || kind == KindAI {
		opts.HeartbeatTimeout = DefaultHeartbeatTimeout
	}
	return opts
}

// withStepOptions applies the options for one step call to the workflow
// context.
func withStepOptions(ctx workflow.Context, kind Kind, override time.Duration) workflow.Context {
	return workflow.WithActivityOptions(ctx, ActivityOptions(kind, override))
}
