package model

import "time"

// AvailabilitySubmission is one athlete's response for a specific shift date.
// Multiple submissions for the same (AthleteID, ShiftDate) pair are
// duplicates; the normalizer keeps the one with the latest SubmittedAt.
type AvailabilitySubmission struct {
	AthleteID   string
	ShiftDate   time.Time // calendar day of the shift, compared by date only
	SubmittedAt time.Time
	Available   bool
}

// Candidate joins a roster entry with its surviving available submission for
// the target shift date. Candidates are immutable for one scheduling run.
type Candidate struct {
	RosterEntry
	ShiftDate   time.Time
	SubmittedAt time.Time
}

// SameDay reports whether two timestamps fall on the same calendar day in
// the first timestamp's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DateKey renders a timestamp as its calendar day, used to group submissions
// and to key history records.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
