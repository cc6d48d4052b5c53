package schedule

import (
	"sort"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Rank orders candidates by fairness: fewest completed shifts first, name
// ascending on ties, athlete ID as the final key so the order stays total
// when two athletes share a name. The input slice is not modified.
func Rank(candidates []model.Candidate) []model.Candidate {
	ranked := make([]model.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ShiftsCompleted != b.ShiftsCompleted {
			return a.ShiftsCompleted < b.ShiftsCompleted
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return ranked
}
