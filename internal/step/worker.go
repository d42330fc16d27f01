package step

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

// WorkerOptions configures a Worker.
type WorkerOptions struct {
	// TaskQueue is the task queue name for this worker.
	TaskQueue string
	// Namespace is the Temporal namespace (default: "default").
	Namespace string
	// MaxConcurrent is max concurrent activity/workflow pollers (default: 10).
	MaxConcurrent int
}

// Worker hosts step-contract workflows together with the engine's activity
// implementations. It manages the client and worker lifecycle.
type Worker struct {
	client  client.Client
	worker  worker.Worker
	opts    WorkerOptions
	started bool
	mu      sync.Mutex
}

// NewWorker creates and initializes a Worker.
func NewWorker(ctx context.Context, opts WorkerOptions) (*Worker, error) {
	if opts.TaskQueue == "" {
		return nil, errors.New("task queue is required")
	}
	if opts.Namespace == "" {
		opts.Namespace = "default"
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}

	c, err := client.Dial(client.Options{
		Namespace: opts.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create temporal client: %w", err)
	}

	w := worker.New(c, opts.TaskQueue, worker.Options{
		MaxConcurrentActivityTaskPollers: opts.MaxConcurrent,
		MaxConcurrentWorkflowTaskPollers: opts.MaxConcurrent,
	})

	return &Worker{
		client: c,
		worker: w,
		opts:   opts,
	}, nil
}

// RegisterWorkflow registers a step-contract workflow function under the name
// carried by its config.
func (w *Worker) RegisterWorkflow(cfg Config, fn Func) error {
	wf, err := NewWorkflow(cfg, fn)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.worker.RegisterWorkflowWithOptions(wf, workflow.RegisterOptions{Name: cfg.Name})
	return nil
}

// RegisterStepActivity registers the engine's implementation of one step
// activity under its contract name (one of the Activity* constants).
func (w *Worker) RegisterStepActivity(name string, impl interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.worker.RegisterActivityWithOptions(impl, activity.RegisterOptions{Name: name})
}

// Start begins the worker's execution loop. Idempotent.
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return nil
	}
	if err := w.worker.Start(); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}
	w.started = true
	return nil
}

// Stop gracefully shuts down the worker. Idempotent.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	w.worker.Stop()
	w.started = false
}

// Close stops the worker if needed and closes the client connection.
func (w *Worker) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		w.worker.Stop()
		w.started = false
	}
	if w.client != nil {
		w.client.Close()
	}
}
