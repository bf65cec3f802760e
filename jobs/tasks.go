package jobs

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCatalogWarmup refreshes the cached default listing page and the
	// category list, masking upstream cold-start flakiness.
	TaskCatalogWarmup = "catalog:warmup"
)

// Warmer is anything that can refresh the catalog cache.
type Warmer interface {
	Warm(ctx context.Context) error
}

// NewCatalogWarmupTask constructs an Asynq task.
func NewCatalogWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskCatalogWarmup, nil)
}

// NewCatalogWarmupHandler processes TaskCatalogWarmup tasks.
func NewCatalogWarmupHandler(warmer Warmer, metrics *Metrics) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		tracker := metrics.Track(TaskCatalogWarmup)
		return tracker.End(warmer.Warm(ctx))
	}
}
