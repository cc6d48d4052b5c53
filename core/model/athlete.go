package model

import (
	"fmt"
	"strings"
)

// Experience classifies an athlete's level for team balancing.
type Experience string

const (
	Varsity Experience = "Varsity"
	Novice  Experience = "Novice"
)

// ParseExperience converts a raw sheet value into an Experience level.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseExperience(s string) (Experience, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "varsity":
		return Varsity, nil
	case "novice":
		return Novice, nil
	default:
		return "", fmt.Errorf("unknown experience level %q", s)
	}
}

// RosterEntry represents one athlete known to the organization.
type RosterEntry struct {
	ID              string     // unique key, derived from the normalized name
	Name            string     // display name as entered on the roster sheet
	Experience      Experience // Varsity or Novice
	LeaderQualified bool       // certified to take charge of a team
	ShiftsCompleted int        // lifetime completed shifts, never decreases
	Active          bool       // deactivated athletes stay on the roster but are never scheduled
}

// Validate checks that the roster entry is sound.
func (r RosterEntry) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("athlete id must not be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("athlete %s: name must not be empty", r.ID)
	}
	if r.Experience != Varsity && r.Experience != Novice {
		return fmt.Errorf("athlete %s: unknown experience level %q", r.ID, r.Experience)
	}
	if r.ShiftsCompleted < 0 {
		return fmt.Errorf("athlete %s: shifts completed must not be negative", r.ID)
	}
	return nil
}

// NormalizeID derives the roster key from a display name.
func NormalizeID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Roster indexes athletes by ID. Later entries win when a source produces
// the same ID twice.
type Roster map[string]RosterEntry

// NewRoster builds a roster from a slice of entries.
func NewRoster(entries []RosterEntry) Roster {
	r := make(Roster, len(entries))
	for _, e := range entries {
		r[e.ID] = e
	}
	return r
}

// Clone returns an independent copy of the roster.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for id, e := range r {
		out[id] = e
	}
	return out
}

// ApplyDeltas increments ShiftsCompleted for each listed athlete and returns
// the roster for chaining. Unknown IDs are ignored.
func (r Roster) ApplyDeltas(ids []string) Roster {
	for _, id := range ids {
		if e, ok := r[id]; ok {
			e.ShiftsCompleted++
			r[id] = e
		}
	}
	return r
}

// ActiveEntries returns the entries currently eligible for scheduling.
func (r Roster) ActiveEntries() []RosterEntry {
	out := make([]RosterEntry, 0, len(r))
	for _, e := range r {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}
