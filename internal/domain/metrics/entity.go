package metrics

// WeeklySample is one calendar week of the primary time-series. Immutable
// once fetched; ordering within a series is chronological.
type WeeklySample struct {
	Week           string  `json:"week"` // Monday of the week, YYYY-MM-DD
	PlannedHours   float64 `json:"planned_hours"`
	ActualHours    float64 `json:"actual_hours"`
	AvailableHours float64 `json:"available_hours"`
	CompletedCount int64   `json:"completed_count"`
}

// WeeklySeries bundles the samples with whatever pre-aggregated figures the
// data source supplies. Authoritative aggregates, when present, are preferred
// verbatim over locally recomputed fallbacks.
type WeeklySeries struct {
	Samples      []WeeklySample
	Productivity *float64 // authoritative percent, nil when not supplied
	Utilization  *float64 // authoritative percent, nil when not supplied
}

// StatusDistribution holds task counts by status for the scope
type StatusDistribution struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Blocked    int64 `json:"blocked"`
}

// Total returns the task count across all statuses
func (d StatusDistribution) Total() int64 {
	return d.Todo + d.InProgress + d.Completed + d.Blocked
}

// Task is one row of the this/next-week timeline lists
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"` // YYYY-MM-DD
}

// TaskTimeline holds the tasks due this calendar week and the next
type TaskTimeline struct {
	ThisWeek []Task `json:"this_week"`
	NextWeek []Task `json:"next_week"`
}

// Snapshot is the merged result of one orchestrated fetch cycle. Missing
// constituents are empty collections, never nil-propagating holes.
type Snapshot struct {
	Weekly     WeeklySeries
	Statuses   StatusDistribution
	Timeline   TaskTimeline
	Generation uint64
}

// EmptySnapshot returns a zeroed snapshot for a given generation, used when
// a scope is known to match nothing
func EmptySnapshot(generation uint64) *Snapshot {
	return &Snapshot{
		Weekly:     WeeklySeries{Samples: []WeeklySample{}},
		Timeline:   TaskTimeline{ThisWeek: []Task{}, NextWeek: []Task{}},
		Generation: generation,
	}
}
