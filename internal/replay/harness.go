package replay

// #region imports
import (
	"fmt"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/decision"
	"github.com/kdray/delivery-council/internal/finance"
)

// #endregion

// #region types
// Scenario is one recorded decision input with its expected winner.
type Scenario struct {
	Name      string
	Inputs    finance.Inputs
	Situation agent.Situation
	Expected  agent.Action // empty = no expectation, report only
}

// Outcome captures one scenario run through the engine.
type Outcome struct {
	Name     string
	Expected agent.Action
	Actual   agent.Action
	Urgency  float64
	Totals   map[agent.Action]int
	Nudged   bool
	Pass     bool
	Err      error
}

// Summary aggregates a replay run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Unscored int // scenarios with no expectation
}

// #endregion types

// #region replay
// Replay runs every scenario through the engine in memory. A scenario passes
// when its winner matches the expectation; scenarios without an expectation
// are reported but never counted as failures.
func Replay(scenarios []Scenario, eng *decision.Engine) []Outcome {
	outcomes := make([]Outcome, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := eng.Decide(sc.Inputs, sc.Situation)
		if err != nil {
			outcomes = append(outcomes, Outcome{
				Name:     sc.Name,
				Expected: sc.Expected,
				Err:      fmt.Errorf("scenario %s: %w", sc.Name, err),
			})
			continue
		}
		outcomes = append(outcomes, Outcome{
			Name:     sc.Name,
			Expected: sc.Expected,
			Actual:   res.Winner,
			Urgency:  res.Urgency,
			Totals:   res.Tally.Totals,
			Nudged:   res.Tally.NudgeApplied,
			Pass:     sc.Expected == "" || res.Winner == sc.Expected,
		})
	}
	return outcomes
}

// Summarize folds outcomes into aggregate counts.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	s.Total = len(outcomes)
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			s.Errored++
		case o.Expected == "":
			s.Unscored++
		case o.Pass:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// #endregion replay
