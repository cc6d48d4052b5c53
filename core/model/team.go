package model

import "fmt"

// Team is the output of one scheduling run: one leader plus the member
// slots, all distinct athletes.
type Team struct {
	Leader  Candidate
	Members []Candidate
}

// Size returns the number of athletes on the team including the leader.
func (t Team) Size() int { return 1 + len(t.Members) }

// IDs returns all athlete IDs, leader first.
func (t Team) IDs() []string {
	ids := make([]string, 0, t.Size())
	ids = append(ids, t.Leader.ID)
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// Names returns all display names, leader first.
func (t Team) Names() []string {
	names := make([]string, 0, t.Size())
	names = append(names, t.Leader.Name)
	for _, m := range t.Members {
		names = append(names, m.Name)
	}
	return names
}

// VarsityCount counts Varsity athletes on the team, leader included.
func (t Team) VarsityCount() int {
	n := 0
	if t.Leader.Experience == Varsity {
		n++
	}
	for _, m := range t.Members {
		if m.Experience == Varsity {
			n++
		}
	}
	return n
}

// Contains reports whether the athlete is on the team.
func (t Team) Contains(id string) bool {
	if t.Leader.ID == id {
		return true
	}
	for _, m := range t.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the structural team invariants: a leader-qualified leader
// and no athlete appearing twice.
func (t Team) Validate() error {
	if !t.Leader.LeaderQualified {
		return fmt.Errorf("team leader %s is not leader qualified", t.Leader.ID)
	}
	seen := map[string]bool{t.Leader.ID: true}
	for _, m := range t.Members {
		if seen[m.ID] {
			return fmt.Errorf("athlete %s appears twice on the team", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}
