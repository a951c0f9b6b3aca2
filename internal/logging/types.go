package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table. JSON columns carry
// the full ballot and totals so a logged decision can be re-rendered or
// replayed without the original inputs file.
type DecisionEntry struct {
	DecisionID    string
	Winner        string
	Urgency       float64
	NudgeApplied  bool
	InputsJSON    string
	SituationJSON string
	BallotsJSON   string
	TotalsJSON    string
	Reason        string
	CreatedAt     time.Time
}

// #endregion decision-entry
