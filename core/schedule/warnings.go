package schedule

import (
	"fmt"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// WarningKind classifies non-fatal validation findings.
type WarningKind string

const (
	DuplicateSubmission WarningKind = "duplicate_submission"
	UnknownAthlete      WarningKind = "unknown_athlete"
	InactiveAthlete     WarningKind = "inactive_athlete"
)

// Warning reports a submission row discarded during normalization. Warnings
// accompany the outcome; they never abort scheduling.
type Warning struct {
	Kind        WarningKind
	AthleteID   string
	ShiftDate   time.Time
	SubmittedAt time.Time // timestamp of the discarded submission
	KeptAt      time.Time // for duplicates, timestamp of the submission kept
}

func (w Warning) String() string {
	switch w.Kind {
	case DuplicateSubmission:
		return fmt.Sprintf("duplicate submission by %s for %s: kept %s, discarded %s",
			w.AthleteID, model.DateKey(w.ShiftDate),
			w.KeptAt.Format(time.RFC3339), w.SubmittedAt.Format(time.RFC3339))
	case UnknownAthlete:
		return fmt.Sprintf("submission by %s for %s: athlete not on roster",
			w.AthleteID, model.DateKey(w.ShiftDate))
	case InactiveAthlete:
		return fmt.Sprintf("submission by %s for %s: athlete deactivated",
			w.AthleteID, model.DateKey(w.ShiftDate))
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.AthleteID)
	}
}

// CountByKind tallies warnings per kind for metrics sinks.
func CountByKind(warnings []Warning) map[WarningKind]int {
	counts := make(map[WarningKind]int, len(warnings))
	for _, w := range warnings {
		counts[w.Kind]++
	}
	return counts
}
