package agent

// #region imports
import (
	"errors"
	"fmt"

	"github.com/kdray/delivery-council/internal/finance"
)

// #endregion

// #region action

// Action is one of the three fixed work choices. No other values are valid.
type Action string

const (
	ActionNone  Action = "NONE"
	ActionShort Action = "SHORT"
	ActionFull  Action = "FULL"
)

// Actions returns the closed action set in ascending work order.
func Actions() []Action {
	return []Action{ActionNone, ActionShort, ActionFull}
}

// WorkRank orders actions by how work-oriented they are: NONE < SHORT < FULL.
// Unrecognized actions rank below NONE.
func (a Action) WorkRank() int {
	switch a {
	case ActionNone:
		return 0
	case ActionShort:
		return 1
	case ActionFull:
		return 2
	}
	return -1
}

// #endregion action

// #region vote

// Score bounds for a single agent's rating of one action (STAR star scale).
const (
	MinScore = 0
	MaxScore = 5
)

// ErrScoreRange marks a vote that omits an action or scores outside [0,5].
var ErrScoreRange = errors.New("agent score out of range")

// Vote maps every action to a score in [MinScore, MaxScore].
type Vote map[Action]int

// Validate checks the vote covers exactly the fixed action set with in-range scores.
func (v Vote) Validate() error {
	if len(v) != len(Actions()) {
		return fmt.Errorf("%w: vote covers %d actions, want %d", ErrScoreRange, len(v), len(Actions()))
	}
	for _, a := range Actions() {
		s, ok := v[a]
		if !ok {
			return fmt.Errorf("%w: missing action %s", ErrScoreRange, a)
		}
		if s < MinScore || s > MaxScore {
			return fmt.Errorf("%w: %s scored %d", ErrScoreRange, a, s)
		}
	}
	return nil
}

// #endregion vote

// #region profile

// Profile describes what an action demands from the day.
type Profile struct {
	Hours  float64 // working hours the action consumes
	Energy int     // energy requirement on the 1..5 scale (0 = none)
}

// DefaultProfiles returns the stock action requirements.
func DefaultProfiles() map[Action]Profile {
	return map[Action]Profile{
		ActionNone:  {Hours: 0, Energy: 0},
		ActionShort: {Hours: 3, Energy: 3},
		ActionFull:  {Hours: 6, Energy: 4},
	}
}

// #endregion profile

// #region situation

// Situation carries the day's non-financial inputs.
type Situation struct {
	HoursAvailable float64 `json:"hours_available"` // max hours that can be worked today
	EnergyLevel    int     `json:"energy_level"`    // honest energy, 1..5
	HoursYesterday float64 `json:"hours_yesterday"` // hours worked the previous day (from history)
	FatigueFlagged bool    `json:"fatigue_flagged"` // user declared themselves too tired to drive safely
	HazardFlagged  bool    `json:"hazard_flagged"`  // weather/road hazard declared
	RestDebt       int     `json:"rest_debt"`       // accumulated rest debt, 0..5
}

// #endregion situation

// #region context

// Context is the immutable bundle every scorer receives. Built once per
// decision; scorers never mutate it.
type Context struct {
	Snapshot  finance.Snapshot
	Urgency   float64 // 0..100
	Situation Situation
	Profiles  map[Action]Profile
}

// #endregion context

// #region scorer

// Scorer rates every action from one criterion's perspective. Implementations
// must be pure: identical contexts produce identical votes.
type Scorer interface {
	Name() string
	Score(ctx Context) Vote
}

// #endregion scorer

// #region helpers

func clamp(x int) int {
	if x < MinScore {
		return MinScore
	}
	if x > MaxScore {
		return MaxScore
	}
	return x
}

// #endregion helpers
