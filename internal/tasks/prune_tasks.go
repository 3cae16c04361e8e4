package tasks

import (
	"context"
	"time"

	"advocate_site/internal/disclaimer"
)

// PruneAcknowledgementsTaskDef removes disclaimer acknowledgements past retention
type PruneAcknowledgementsTaskDef struct {
	Store     disclaimer.Pruner
	Retention time.Duration
	Now       func() time.Time
}

// TaskID returns the unique identifier for this task
func (t *PruneAcknowledgementsTaskDef) TaskID() string {
	return "prune_acknowledgements"
}

// HandleExecution deletes acknowledgements older than the retention window
func (t *PruneAcknowledgementsTaskDef) HandleExecution(ctx context.Context) (map[string]interface{}, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	cutoff := now().Add(-t.Retention)

	removed, err := t.Store.Prune(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"removed": removed,
		"cutoff":  cutoff.Format(time.RFC3339),
	}, nil
}

// DefineTasks registers the tasks a store supports. Stores without explicit
// expiry (cookie-only, Redis TTLs) register nothing.
func DefineTasks(r *Registry, store disclaimer.Store, retention time.Duration) {
	if pruner, ok := store.(disclaimer.Pruner); ok {
		task := &PruneAcknowledgementsTaskDef{Store: pruner, Retention: retention}
		r.Register(task.TaskID(), task.HandleExecution)
	}
}
