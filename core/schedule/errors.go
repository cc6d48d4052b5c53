package schedule

import "errors"

// Build failures. All are returned wrapped so callers can match the class
// with errors.Is while the message carries run specifics.
var (
	// ErrNoEligibleLeader indicates no candidate is both available and
	// leader qualified.
	ErrNoEligibleLeader = errors.New("no leader-qualified candidate available")

	// ErrInsufficientCandidates indicates fewer validated candidates than
	// the configured team size.
	ErrInsufficientCandidates = errors.New("not enough candidates for a full team")

	// ErrBalanceUnsatisfiable indicates no combination of available
	// candidates can meet the varsity minimum, even after repair.
	ErrBalanceUnsatisfiable = errors.New("varsity minimum unsatisfiable")

	// ErrSearchInfeasible indicates the exhaustive builder found no team it
	// could certify within its node budget.
	ErrSearchInfeasible = errors.New("search found no feasible team")
)

// FailureReason maps a build error to the stable tag used in history records
// and metric labels.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoEligibleLeader):
		return "no_eligible_leader"
	case errors.Is(err, ErrInsufficientCandidates):
		return "insufficient_candidates"
	case errors.Is(err, ErrBalanceUnsatisfiable):
		return "balance_unsatisfiable"
	case errors.Is(err, ErrSearchInfeasible):
		return "search_infeasible"
	default:
		return "error"
	}
}
