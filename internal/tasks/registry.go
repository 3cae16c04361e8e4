package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskHandler runs one housekeeping task and returns a result summary
type TaskHandler func(ctx context.Context) (map[string]interface{}, error)

// Registry stores the mapping of task names to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]TaskHandler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]TaskHandler)}
}

// Register adds a handler for a task name
func (r *Registry) Register(name string, handler TaskHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// Get retrieves a handler for a task name
func (r *Registry) Get(name string) (TaskHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[name]
	return handler, ok
}

// Names lists registered tasks in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunAll executes every task once. A failing task is logged and does not stop the others.
// It returns the number of failed tasks.
func (r *Registry) RunAll(ctx context.Context, logger *zap.Logger) int {
	failed := 0
	for _, name := range r.Names() {
		if ctx.Err() != nil {
			return failed
		}

		handler, _ := r.Get(name)
		start := time.Now()
		result, err := handler(ctx)
		runtime := time.Since(start)

		if err != nil {
			failed++
			logger.Error("Task failed", zap.String("task", name), zap.Duration("runtime", runtime), zap.Error(err))
			continue
		}
		logger.Info("Task completed", zap.String("task", name), zap.Duration("runtime", runtime), zap.Any("result", result))
	}
	return failed
}

// Run executes all tasks immediately and then on every tick until ctx is cancelled
func (r *Registry) Run(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.RunAll(ctx, logger)
	for {
		select {
		case <-ticker.C:
			r.RunAll(ctx, logger)
		case <-ctx.Done():
			return
		}
	}
}
