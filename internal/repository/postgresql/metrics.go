package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sriram315/project-dashboard-go/internal/domain/metrics"
	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
	"github.com/sriram315/project-dashboard-go/internal/pkg/database"
)

type metricsRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

// NewMetricsRepository returns a metrics.Source over Postgres. loc is the
// reference timezone for "current week" in the task timeline; nil means UTC.
func NewMetricsRepository(db *database.DB, loc *time.Location) metrics.Source {
	if loc == nil {
		loc = time.UTC
	}
	return &metricsRepositoryImpl{db: db, loc: loc}
}

// scopeArgs normalizes the scope's id filters for SQL: an empty array means
// "no restriction" for that dimension.
func scopeArgs(sc scope.Resolved) ([]string, []string) {
	projects := sc.ProjectIDs
	if projects == nil {
		projects = []string{}
	}
	employees := sc.EmployeeIDs
	if employees == nil {
		employees = []string{}
	}
	return projects, employees
}

// GetWeeklySeries returns one sample per calendar week in the range, in
// chronological order. Weeks with no tasks still appear, zeroed, so the
// series always spans the full range.
func (r *metricsRepositoryImpl) GetWeeklySeries(ctx context.Context, sc scope.Resolved) (metrics.WeeklySeries, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH weeks AS (
			SELECT generate_series(
				date_trunc('week', $1::date),
				date_trunc('week', $2::date),
				interval '1 week'
			)::date AS week_start
		),
		task_agg AS (
			SELECT
				date_trunc('week', t.due_date)::date AS week_start,
				COALESCE(SUM(t.planned_hours), 0) AS planned_hours,
				COALESCE(SUM(t.actual_hours), 0) AS actual_hours,
				COALESCE(SUM(CASE WHEN t.status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_count
			FROM tasks t
			WHERE t.deleted_at IS NULL
			AND t.due_date >= $1 AND t.due_date <= $2
			AND (cardinality($3::text[]) = 0 OR t.project_id = ANY($3))
			AND (cardinality($4::text[]) = 0 OR t.assignee_id = ANY($4))
			GROUP BY 1
		),
		avail_agg AS (
			SELECT
				a.week_start,
				COALESCE(SUM(a.available_hours), 0) AS available_hours
			FROM employee_availability a
			WHERE a.week_start >= date_trunc('week', $1::date)
			AND a.week_start <= date_trunc('week', $2::date)
			AND (cardinality($4::text[]) = 0 OR a.employee_id = ANY($4))
			GROUP BY 1
		)
		SELECT
			w.week_start,
			COALESCE(t.planned_hours, 0),
			COALESCE(t.actual_hours, 0),
			COALESCE(a.available_hours, 0),
			COALESCE(t.completed_count, 0)
		FROM weeks w
		LEFT JOIN task_agg t ON t.week_start = w.week_start
		LEFT JOIN avail_agg a ON a.week_start = w.week_start
		ORDER BY w.week_start
	`

	projects, employees := scopeArgs(sc)
	rows, err := q.Query(ctx, query, sc.StartDate, sc.EndDate, projects, employees)
	if err != nil {
		return metrics.WeeklySeries{}, fmt.Errorf("failed to get weekly series: %w", err)
	}
	defer rows.Close()

	series := metrics.WeeklySeries{Samples: []metrics.WeeklySample{}}
	for rows.Next() {
		var weekStart time.Time
		var s metrics.WeeklySample
		if err := rows.Scan(&weekStart, &s.PlannedHours, &s.ActualHours, &s.AvailableHours, &s.CompletedCount); err != nil {
			return metrics.WeeklySeries{}, fmt.Errorf("failed to scan weekly sample: %w", err)
		}
		s.Week = weekStart.Format("2006-01-02")
		series.Samples = append(series.Samples, s)
	}
	if err := rows.Err(); err != nil {
		return metrics.WeeklySeries{}, err
	}

	// The source holds no pre-aggregated figures; the calculator falls back
	// to its hours-weighted sums.
	return series, nil
}

// GetStatusDistribution returns task counts by status for the scope
func (r *metricsRepositoryImpl) GetStatusDistribution(ctx context.Context, sc scope.Resolved) (metrics.StatusDistribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'todo' THEN 1 ELSE 0 END), 0) AS todo,
			COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'blocked' THEN 1 ELSE 0 END), 0) AS blocked
		FROM tasks
		WHERE deleted_at IS NULL
		AND due_date >= $1 AND due_date <= $2
		AND (cardinality($3::text[]) = 0 OR project_id = ANY($3))
		AND (cardinality($4::text[]) = 0 OR assignee_id = ANY($4))
	`

	projects, employees := scopeArgs(sc)
	var dist metrics.StatusDistribution
	err := q.QueryRow(ctx, query, sc.StartDate, sc.EndDate, projects, employees).Scan(
		&dist.Todo, &dist.InProgress, &dist.Completed, &dist.Blocked,
	)
	if err != nil {
		return metrics.StatusDistribution{}, fmt.Errorf("failed to get status distribution: %w", err)
	}
	return dist, nil
}

// GetTaskTimeline returns the tasks due in the current and the next calendar
// week, independent of the scope's date range. The window and the
// this/next-week split both derive from one week start computed in the
// repository's timezone, so the database server's clock never decides the
// buckets.
func (r *metricsRepositoryImpl) GetTaskTimeline(ctx context.Context, sc scope.Resolved) (metrics.TaskTimeline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.status, e.username, t.due_date
		FROM tasks t
		JOIN employees e ON e.id = t.assignee_id
		WHERE t.deleted_at IS NULL
		AND t.due_date >= $3::date
		AND t.due_date < $3::date + interval '2 weeks'
		AND (cardinality($1::text[]) = 0 OR t.project_id = ANY($1))
		AND (cardinality($2::text[]) = 0 OR t.assignee_id = ANY($2))
		ORDER BY t.due_date, t.id
	`

	weekStart := startOfWeek(time.Now(), r.loc)
	nextWeek := weekStart.AddDate(0, 0, 7).Format("2006-01-02")

	projects, employees := scopeArgs(sc)
	rows, err := q.Query(ctx, query, projects, employees, weekStart.Format("2006-01-02"))
	if err != nil {
		return metrics.TaskTimeline{}, fmt.Errorf("failed to get task timeline: %w", err)
	}
	defer rows.Close()

	timeline := metrics.TaskTimeline{ThisWeek: []metrics.Task{}, NextWeek: []metrics.Task{}}
	for rows.Next() {
		var t metrics.Task
		var due time.Time
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.Assignee, &due); err != nil {
			return metrics.TaskTimeline{}, fmt.Errorf("failed to scan task: %w", err)
		}
		t.DueDate = due.Format("2006-01-02")
		// Dates compare safely as YYYY-MM-DD strings, with no timezone drift
		// between pgx's scanned value and the local week start.
		if t.DueDate < nextWeek {
			timeline.ThisWeek = append(timeline.ThisWeek, t)
		} else {
			timeline.NextWeek = append(timeline.NextWeek, t)
		}
	}
	return timeline, rows.Err()
}

// startOfWeek returns Monday of the week containing t, evaluated in loc
func startOfWeek(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
}
