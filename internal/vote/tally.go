package vote

import (
	"errors"
	"math"

	"github.com/kdray/delivery-council/internal/agent"
)

// ErrEmptyBallot marks a tally attempted with zero agent votes.
var ErrEmptyBallot = errors.New("empty ballot")

// #region tally
// Tally runs Score-Then-Automatic-Runoff over the ballot:
//
//  1. Score phase: sum each agent's score per action.
//  2. Runoff phase: take the two actions with the highest totals (total ties
//     broken toward the more work-oriented action) and give the win to the
//     one preferred by more agents head-to-head.
//  3. Near-tie nudge: if the finalists' totals differ by at most
//     cfg.NudgeThreshold and the runoff went to the less work-oriented
//     finalist, cfg.WorkBias is credited to the work-oriented one; if that
//     closes the gap the winner flips and NudgeApplied is set.
//
// Deterministic for identical ballots and config; no state survives the call.
func Tally(b Ballot, cfg TallyConfig) (Result, error) {
	if len(b) == 0 {
		return Result{}, ErrEmptyBallot
	}

	totals := make(map[agent.Action]int, len(agent.Actions()))
	for _, a := range agent.Actions() {
		totals[a] = 0
	}
	for _, entry := range b {
		for a, s := range entry.Vote {
			totals[a] += s
		}
	}

	first, second := topTwo(totals)

	prefs := map[agent.Action]int{first: 0, second: 0}
	for _, entry := range b {
		sa, sb := entry.Vote[first], entry.Vote[second]
		if sa > sb {
			prefs[first]++
		} else if sb > sa {
			prefs[second]++
		}
	}

	winner := runoffWinner(first, second, prefs, totals)

	res := Result{
		Totals:      totals,
		TopTwo:      [2]agent.Action{first, second},
		Preferences: prefs,
		Winner:      winner,
	}

	// Near-tie nudge toward work.
	workier, other := first, second
	if second.WorkRank() > first.WorkRank() {
		workier, other = second, first
	}
	margin := math.Abs(float64(totals[first] - totals[second]))
	if winner != workier && margin <= cfg.NudgeThreshold {
		if float64(totals[workier])+cfg.WorkBias > float64(totals[other]) {
			res.Winner = workier
			res.NudgeApplied = true
		}
	}

	return res, nil
}

// #endregion tally

// #region top-two

// topTwo picks the two highest-total actions. Equal totals resolve toward the
// more work-oriented action.
func topTwo(totals map[agent.Action]int) (agent.Action, agent.Action) {
	ranked := make([]agent.Action, 0, len(totals))
	ranked = append(ranked, agent.Actions()...)
	// Insertion order is fixed (agent.Actions()), so the sort is deterministic.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && beats(totals, ranked[j], ranked[j-1]); j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked[0], ranked[1]
}

func beats(totals map[agent.Action]int, a, b agent.Action) bool {
	if totals[a] != totals[b] {
		return totals[a] > totals[b]
	}
	return a.WorkRank() > b.WorkRank()
}

// #endregion top-two

// #region runoff

// runoffWinner resolves the head-to-head: preference count, then total, then
// work orientation.
func runoffWinner(first, second agent.Action, prefs, totals map[agent.Action]int) agent.Action {
	switch {
	case prefs[first] > prefs[second]:
		return first
	case prefs[second] > prefs[first]:
		return second
	case totals[first] > totals[second]:
		return first
	case totals[second] > totals[first]:
		return second
	case first.WorkRank() > second.WorkRank():
		return first
	}
	return second
}

// #endregion runoff
