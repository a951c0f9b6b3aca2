package vote

import "github.com/kdray/delivery-council/internal/agent"

// #region ballot

// Entry is one agent's validated vote, with the agent identity preserved for
// display and runoff counting.
type Entry struct {
	Agent string
	Vote  agent.Vote
}

// Ballot is the full set of agent votes for a single decision.
type Ballot []Entry

// #endregion ballot

// #region tally-config

// TallyConfig holds the runoff tie-break parameters.
type TallyConfig struct {
	// NudgeThreshold is the max total-score difference between the two
	// finalists for the near-tie nudge to be considered.
	NudgeThreshold float64
	// WorkBias is credited to the more work-oriented finalist's total during
	// the nudge comparison. Zero disables the nudge entirely.
	WorkBias float64
}

// DefaultTallyConfig returns the stock tie-break parameters.
func DefaultTallyConfig() TallyConfig {
	return TallyConfig{
		NudgeThreshold: 1,
		WorkBias:       0.6,
	}
}

// #endregion tally-config

// #region result

// Result is the read-only outcome of a STAR tally.
type Result struct {
	Totals       map[agent.Action]int
	TopTwo       [2]agent.Action
	Preferences  map[agent.Action]int // pairwise preference counts for the two finalists
	Winner       agent.Action
	NudgeApplied bool
}

// #endregion result
