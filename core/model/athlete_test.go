package model

import "testing"

func TestParseExperience(t *testing.T) {
	cases := map[string]Experience{
		"Varsity":  Varsity,
		" varsity": Varsity,
		"NOVICE":   Novice,
		"novice ":  Novice,
	}
	for in, want := range cases {
		got, err := ParseExperience(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s got %s", in, want, got)
		}
	}
	if _, err := ParseExperience("junior"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID("  Jordan Blake "); got != "jordan blake" {
		t.Fatalf("expected normalized id, got %q", got)
	}
}

func TestRosterEntryValidate(t *testing.T) {
	e := RosterEntry{ID: "a", Name: "A", Experience: Varsity, Active: true}
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Experience = "Elite"
	if err := e.Validate(); err == nil {
		t.Fatalf("expected error for unknown experience")
	}
	e.Experience = Novice
	e.ShiftsCompleted = -1
	if err := e.Validate(); err == nil {
		t.Fatalf("expected error for negative shift count")
	}
}

func TestRosterApplyDeltas(t *testing.T) {
	r := NewRoster([]RosterEntry{
		{ID: "a", Name: "A", Experience: Varsity, ShiftsCompleted: 1, Active: true},
		{ID: "b", Name: "B", Experience: Novice, Active: true},
	})
	r.ApplyDeltas([]string{"a", "missing"})
	if r["a"].ShiftsCompleted != 2 {
		t.Fatalf("expected 2 shifts for a, got %d", r["a"].ShiftsCompleted)
	}
	if r["b"].ShiftsCompleted != 0 {
		t.Fatalf("expected b untouched, got %d", r["b"].ShiftsCompleted)
	}
}

func TestRosterCloneIsIndependent(t *testing.T) {
	r := NewRoster([]RosterEntry{{ID: "a", Name: "A", Experience: Varsity, Active: true}})
	c := r.Clone()
	c.ApplyDeltas([]string{"a"})
	if r["a"].ShiftsCompleted != 0 {
		t.Fatalf("clone mutation leaked into source roster")
	}
}
