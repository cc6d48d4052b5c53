package schedule

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Report summarizes the completed-shift distribution across active athletes.
type Report struct {
	Athletes int
	Mean     float64
	StdDev   float64
	Min      int
	Max      int
}

// Spread returns the gap between the most and least worked athletes.
func (r Report) Spread() int { return r.Max - r.Min }

// Fairness computes the distribution report over the roster's active
// entries.
func Fairness(roster model.Roster) Report {
	entries := roster.ActiveEntries()
	if len(entries) == 0 {
		return Report{}
	}
	xs := make([]float64, 0, len(entries))
	min, max := entries[0].ShiftsCompleted, entries[0].ShiftsCompleted
	for _, e := range entries {
		xs = append(xs, float64(e.ShiftsCompleted))
		if e.ShiftsCompleted < min {
			min = e.ShiftsCompleted
		}
		if e.ShiftsCompleted > max {
			max = e.ShiftsCompleted
		}
	}
	rep := Report{
		Athletes: len(entries),
		Mean:     stat.Mean(xs, nil),
		Min:      min,
		Max:      max,
	}
	if len(xs) > 1 {
		rep.StdDev = stat.StdDev(xs, nil)
	}
	return rep
}
