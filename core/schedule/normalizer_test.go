package schedule

import (
	"testing"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

var monday = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

func newEntry(name string, exp model.Experience, leader bool, shifts int) model.RosterEntry {
	return model.RosterEntry{
		ID:              model.NormalizeID(name),
		Name:            name,
		Experience:      exp,
		LeaderQualified: leader,
		ShiftsCompleted: shifts,
		Active:          true,
	}
}

func newSub(name string, date time.Time, submitted time.Time, available bool) model.AvailabilitySubmission {
	return model.AvailabilitySubmission{
		AthleteID:   model.NormalizeID(name),
		ShiftDate:   date,
		SubmittedAt: submitted,
		Available:   available,
	}
}

func newCand(name string, exp model.Experience, leader bool, shifts int) model.Candidate {
	return model.Candidate{
		RosterEntry: newEntry(name, exp, leader, shifts),
		ShiftDate:   monday,
		SubmittedAt: monday,
	}
}

func TestNormalizeKeepsLatestDuplicate(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{newEntry("Ann", model.Varsity, false, 1)})
	early := monday.Add(-48 * time.Hour)
	late := monday.Add(-24 * time.Hour)
	subs := []model.AvailabilitySubmission{
		newSub("Ann", monday, early, true),
		newSub("Ann", monday, late, false),
	}

	candidates, warnings := Normalize(roster, subs, monday)
	if len(warnings) != 1 || warnings[0].Kind != DuplicateSubmission {
		t.Fatalf("expected one duplicate warning, got %v", warnings)
	}
	if !warnings[0].KeptAt.Equal(late) || !warnings[0].SubmittedAt.Equal(early) {
		t.Fatalf("warning should name kept %v and discarded %v: %+v", late, early, warnings[0])
	}
	// The later submission marked Ann unavailable, so no candidate survives.
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}
}

func TestNormalizeDuplicateTieKeepsLaterRow(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{newEntry("Ann", model.Varsity, false, 1)})
	at := monday.Add(-24 * time.Hour)
	subs := []model.AvailabilitySubmission{
		newSub("Ann", monday, at, true),
		newSub("Ann", monday, at, false),
	}

	candidates, warnings := Normalize(roster, subs, monday)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
	if len(candidates) != 0 {
		t.Fatalf("expected tie to keep the later row, got %v", candidates)
	}
}

func TestNormalizeUnknownAthlete(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{newEntry("Ann", model.Varsity, false, 1)})
	subs := []model.AvailabilitySubmission{
		newSub("Stranger", monday, monday, true),
		newSub("Ann", monday, monday, true),
	}

	candidates, warnings := Normalize(roster, subs, monday)
	if len(candidates) != 1 || candidates[0].ID != "ann" {
		t.Fatalf("expected only ann, got %v", candidates)
	}
	if len(warnings) != 1 || warnings[0].Kind != UnknownAthlete || warnings[0].AthleteID != "stranger" {
		t.Fatalf("expected unknown athlete warning, got %v", warnings)
	}
}

func TestNormalizeInactiveAthlete(t *testing.T) {
	retired := newEntry("Old Timer", model.Varsity, true, 30)
	retired.Active = false
	roster := model.NewRoster([]model.RosterEntry{retired})
	subs := []model.AvailabilitySubmission{newSub("Old Timer", monday, monday, true)}

	candidates, warnings := Normalize(roster, subs, monday)
	if len(candidates) != 0 {
		t.Fatalf("inactive athlete must not become a candidate: %v", candidates)
	}
	if len(warnings) != 1 || warnings[0].Kind != InactiveAthlete {
		t.Fatalf("expected inactive warning, got %v", warnings)
	}
}

func TestNormalizeDropsSilently(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{
		newEntry("Ann", model.Varsity, false, 1),
		newEntry("Bob", model.Novice, false, 0),
	})
	tuesday := monday.AddDate(0, 0, 1)
	subs := []model.AvailabilitySubmission{
		newSub("Ann", monday, monday, false), // unavailable
		newSub("Bob", tuesday, monday, true), // other date
	}

	candidates, warnings := Normalize(roster, subs, monday)
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}
	if len(warnings) != 0 {
		t.Fatalf("unavailable and other-date rows must drop silently, got %v", warnings)
	}
}

func TestNormalizeWarnsAcrossDates(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{newEntry("Ann", model.Varsity, false, 1)})
	tuesday := monday.AddDate(0, 0, 1)
	subs := []model.AvailabilitySubmission{
		newSub("Ann", tuesday, monday.Add(-2*time.Hour), true),
		newSub("Ann", tuesday, monday.Add(-1*time.Hour), true),
	}

	_, warnings := Normalize(roster, subs, monday)
	if len(warnings) != 1 || warnings[0].Kind != DuplicateSubmission {
		t.Fatalf("duplicates on other dates should still warn, got %v", warnings)
	}
}

func TestNormalizeNeverFails(t *testing.T) {
	candidates, warnings := Normalize(nil, []model.AvailabilitySubmission{
		{AthleteID: "", ShiftDate: monday, Available: true},
		newSub("Ghost", monday, monday, true),
	}, monday)
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates from junk rows, got %v", candidates)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected every junk row to warn, got %v", warnings)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{
		newEntry("Ann", model.Varsity, false, 1),
		newEntry("Bob", model.Novice, false, 0),
	})
	subs := []model.AvailabilitySubmission{
		newSub("Ann", monday, monday.Add(-time.Hour), true),
		newSub("Ann", monday, monday, true),
		newSub("Bob", monday, monday, true),
		newSub("Ghost", monday, monday, true),
	}

	first, warnings := Normalize(roster, subs, monday)
	if len(warnings) == 0 {
		t.Fatalf("expected warnings on first pass")
	}

	again := make([]model.AvailabilitySubmission, 0, len(first))
	for _, c := range first {
		again = append(again, model.AvailabilitySubmission{
			AthleteID: c.ID, ShiftDate: c.ShiftDate,
			SubmittedAt: c.SubmittedAt, Available: true,
		})
	}
	second, rewarn := Normalize(roster, again, monday)
	if len(rewarn) != 0 {
		t.Fatalf("re-normalizing clean output must not warn, got %v", rewarn)
	}
	if len(second) != len(first) {
		t.Fatalf("expected stable candidate set, got %d then %d", len(first), len(second))
	}
}

func TestNormalizeDeterministicWarningOrder(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{newEntry("Ann", model.Varsity, false, 1)})
	subs := []model.AvailabilitySubmission{
		newSub("Zed", monday, monday, true),
		newSub("Ann", monday, monday.Add(-time.Hour), true),
		newSub("Ann", monday, monday, true),
		newSub("Bob", monday, monday, true),
	}
	_, w1 := Normalize(roster, subs, monday)

	reversed := []model.AvailabilitySubmission{subs[3], subs[2], subs[1], subs[0]}
	_, w2 := Normalize(roster, reversed, monday)

	if len(w1) != len(w2) {
		t.Fatalf("warning counts differ: %d vs %d", len(w1), len(w2))
	}
	for i := range w1 {
		if w1[i].Kind != w2[i].Kind || w1[i].AthleteID != w2[i].AthleteID {
			t.Fatalf("warning order not deterministic: %v vs %v", w1, w2)
		}
	}
}
