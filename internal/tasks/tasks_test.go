package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"advocate_site/internal/disclaimer"
)

type fakePruner struct {
	cutoff time.Time
	err    error
}

func (f *fakePruner) Prune(_ context.Context, before time.Time) (int64, error) {
	f.cutoff = before
	return 3, f.err
}

func TestPruneAcknowledgementsTask(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	pruner := &fakePruner{}
	task := &PruneAcknowledgementsTaskDef{Store: pruner, Retention: 24 * time.Hour, Now: func() time.Time { return now }}

	result, err := task.HandleExecution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), pruner.cutoff)
	assert.EqualValues(t, 3, result["removed"])

	pruner.err = errors.New("db down")
	_, err = task.HandleExecution(context.Background())
	assert.Error(t, err)
}

func TestDefineTasks(t *testing.T) {
	tests := []struct {
		name     string
		store    disclaimer.Store
		expected []string
	}{
		{name: "memory store prunes", store: disclaimer.NewMemoryStore(), expected: []string{"prune_acknowledgements"}},
		{name: "cookie only", store: disclaimer.NopStore{}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			DefineTasks(r, tt.store, time.Hour)
			assert.Equal(t, tt.expected, r.Names())
		})
	}
}

func TestRunAllContinuesAfterFailure(t *testing.T) {
	r := NewRegistry()
	var ran []string
	r.Register("b_ok", func(context.Context) (map[string]interface{}, error) {
		ran = append(ran, "b_ok")
		return nil, nil
	})
	r.Register("a_fail", func(context.Context) (map[string]interface{}, error) {
		ran = append(ran, "a_fail")
		return nil, errors.New("boom")
	})

	failed := r.RunAll(context.Background(), zap.NewNop())
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"a_fail", "b_ok"}, ran)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRegistry()
	var count atomic.Int32
	first := make(chan struct{})
	r.Register("tick", func(context.Context) (map[string]interface{}, error) {
		if count.Add(1) == 1 {
			close(first)
		}
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Hour, zap.NewNop())
		close(done)
	}()

	<-first
	cancel()
	<-done
	assert.EqualValues(t, 1, count.Load())
}
