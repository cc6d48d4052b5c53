package schedule

import (
	"sort"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Normalize turns raw roster and submission rows into the validated
// candidate set for targetDate. Duplicate, unknown-athlete and
// deactivated-athlete rows degrade to warnings; rows marked unavailable and
// rows for other dates are dropped silently. Normalize never fails.
//
// Duplicates resolve per (athlete, shift date) group across all dates, so a
// double submission surfaces even when it concerns a date nobody is
// scheduling yet. The latest SubmittedAt wins; an exact timestamp tie keeps
// the later row.
func Normalize(roster model.Roster, submissions []model.AvailabilitySubmission, targetDate time.Time) ([]model.Candidate, []Warning) {
	type groupKey struct {
		athlete string
		date    string
	}
	kept := make(map[groupKey]model.AvailabilitySubmission)
	var warnings []Warning

	for _, sub := range submissions {
		key := groupKey{sub.AthleteID, model.DateKey(sub.ShiftDate)}
		prev, dup := kept[key]
		if !dup {
			kept[key] = sub
			continue
		}
		discarded, retained := sub, prev
		if !sub.SubmittedAt.Before(prev.SubmittedAt) {
			discarded, retained = prev, sub
			kept[key] = sub
		}
		warnings = append(warnings, Warning{
			Kind:        DuplicateSubmission,
			AthleteID:   sub.AthleteID,
			ShiftDate:   sub.ShiftDate,
			SubmittedAt: discarded.SubmittedAt,
			KeptAt:      retained.SubmittedAt,
		})
	}

	keys := make([]groupKey, 0, len(kept))
	for k := range kept {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].athlete != keys[j].athlete {
			return keys[i].athlete < keys[j].athlete
		}
		return keys[i].date < keys[j].date
	})

	var candidates []model.Candidate
	for _, key := range keys {
		sub := kept[key]
		entry, known := roster[sub.AthleteID]
		if !known {
			warnings = append(warnings, Warning{
				Kind: UnknownAthlete, AthleteID: sub.AthleteID,
				ShiftDate: sub.ShiftDate, SubmittedAt: sub.SubmittedAt,
			})
			continue
		}
		if !entry.Active {
			warnings = append(warnings, Warning{
				Kind: InactiveAthlete, AthleteID: sub.AthleteID,
				ShiftDate: sub.ShiftDate, SubmittedAt: sub.SubmittedAt,
			})
			continue
		}
		if !sub.Available || !model.SameDay(sub.ShiftDate, targetDate) {
			continue
		}
		candidates = append(candidates, model.Candidate{
			RosterEntry: entry,
			ShiftDate:   sub.ShiftDate,
			SubmittedAt: sub.SubmittedAt,
		})
	}

	sortWarnings(warnings)
	return candidates, warnings
}

// sortWarnings orders warnings deterministically so identical inputs yield
// identical outcomes.
func sortWarnings(ws []Warning) {
	sort.Slice(ws, func(i, j int) bool {
		a, b := ws[i], ws[j]
		if a.AthleteID != b.AthleteID {
			return a.AthleteID < b.AthleteID
		}
		if ak, bk := model.DateKey(a.ShiftDate), model.DateKey(b.ShiftDate); ak != bk {
			return ak < bk
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.SubmittedAt.Before(b.SubmittedAt)
	})
}
