package step

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/workflow"
)

// Config describes one schedulable workflow built on the step contract.
type Config struct {
	// Name is the workflow type name registered with the engine.
	Name string `yaml:"name"`
	// TaskQueue is the queue the hosting worker polls.
	TaskQueue string `yaml:"task_queue"`
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("workflow name is required")
	}
	if c.TaskQueue == "" {
		return errors.New("task queue is required")
	}
	return nil
}

// Func is a workflow function written against the step contract.
type Func func(ctx workflow.Context, rt *Runtime) error

// NewWorkflow adapts a step-contract workflow function into an engine-native
// workflow function. This is the single seam where the host engine supplies
// live step implementations: the returned function is registered with a
// worker whose activities implement the Activity* names.
func NewWorkflow(cfg Config, fn Func) (func(workflow.Context) error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workflow config: %w", err)
	}

	rt := NewRuntime()
	return func(ctx workflow.Context) error {
		logger := workflow.GetLogger(ctx)
		logger.Info("Workflow starting", "name", cfg.Name)

		if err := fn(ctx, rt); err != nil {
			logger.Error("Workflow failed", "name", cfg.Name, "error", err)
			return err
		}

		logger.Info("Workflow complete", "name", cfg.Name)
		return nil
	}, nil
}
