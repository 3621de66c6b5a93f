package metrics

import "math"

// Derived holds the secondary figures computed from a weekly series. A nil
// field means "no data" and must be rendered as such, never as 0%.
type Derived struct {
	Productivity        *float64 `json:"productivity"`
	Utilization         *float64 `json:"utilization"`
	AvailableHoursTotal *float64 `json:"available_hours_total"`
}

// Derive computes productivity, utilization and total available hours from a
// weekly series, preferring authoritative aggregates when the source supplied
// them. All figures are hours-weighted sums across the range, not averages of
// per-week percentages.
//
// A week contributes to the productivity sums only if it reports completed
// work; weeks with zero completed units are excluded from both numerator and
// denominator rather than counted as zero. Division by zero yields nil.
func Derive(series WeeklySeries) Derived {
	var d Derived

	if len(series.Samples) == 0 {
		return d
	}

	if series.Productivity != nil {
		d.Productivity = roundPtr(*series.Productivity)
	} else {
		var planned, actual float64
		for _, s := range series.Samples {
			if s.CompletedCount == 0 {
				continue
			}
			planned += s.PlannedHours
			actual += s.ActualHours
		}
		if actual > 0 {
			d.Productivity = roundPtr(planned / actual * 100)
		}
	}

	if series.Utilization != nil {
		d.Utilization = roundPtr(*series.Utilization)
	} else {
		var planned, available float64
		for _, s := range series.Samples {
			planned += s.PlannedHours
			available += s.AvailableHours
		}
		if available > 0 {
			d.Utilization = roundPtr(planned / available * 100)
		}
	}

	var available float64
	for _, s := range series.Samples {
		available += s.AvailableHours
	}
	d.AvailableHoursTotal = roundPtr(available)

	return d
}

func roundPtr(v float64) *float64 {
	r := math.Round(v)
	return &r
}
