package metrics

import (
	"context"

	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
)

// Source defines the interface for the independent metric data sources the
// orchestrator fans out to. Each method is an independent fetch; the engine
// treats a failure and a timeout identically.
type Source interface {
	// GetWeeklySeries returns one sample per calendar week in the scope's
	// date range, chronologically ordered, plus any authoritative aggregates
	GetWeeklySeries(ctx context.Context, sc scope.Resolved) (WeeklySeries, error)

	// GetStatusDistribution returns task counts by status for the scope
	GetStatusDistribution(ctx context.Context, sc scope.Resolved) (StatusDistribution, error)

	// GetTaskTimeline returns the tasks due this and next calendar week
	GetTaskTimeline(ctx context.Context, sc scope.Resolved) (TaskTimeline, error)
}
