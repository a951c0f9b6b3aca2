package logging

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/decision"
	"github.com/kdray/delivery-council/internal/finance"
)

// #endregion

// #region log-decision
// LogDecision writes a decision entry to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	nudged := 0
	if entry.NudgeApplied {
		nudged = 1
	}

	_, err := db.Exec(
		`INSERT INTO decision_log
		 (decision_id, winner, urgency, nudge_applied, inputs_json, situation_json, ballots_json, totals_json, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.DecisionID,
		entry.Winner,
		entry.Urgency,
		nudged,
		nullIfEmpty(entry.InputsJSON),
		nullIfEmpty(entry.SituationJSON),
		nullIfEmpty(entry.BallotsJSON),
		nullIfEmpty(entry.TotalsJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region from-result
// EntryFromResult serializes a decision result into a loggable entry.
func EntryFromResult(res decision.Result, in finance.Inputs, sit agent.Situation, reason string) (DecisionEntry, error) {
	inputsJSON, err := json.Marshal(in)
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal inputs: %w", err)
	}
	sitJSON, err := json.Marshal(sit)
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal situation: %w", err)
	}
	ballots := map[string]agent.Vote{}
	for _, e := range res.Ballot {
		ballots[e.Agent] = e.Vote
	}
	ballotsJSON, err := json.Marshal(ballots)
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal ballots: %w", err)
	}
	totalsJSON, err := json.Marshal(res.Tally.Totals)
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal totals: %w", err)
	}

	return DecisionEntry{
		DecisionID:    res.ID,
		Winner:        string(res.Winner),
		Urgency:       res.Urgency,
		NudgeApplied:  res.Tally.NudgeApplied,
		InputsJSON:    string(inputsJSON),
		SituationJSON: string(sitJSON),
		BallotsJSON:   string(ballotsJSON),
		TotalsJSON:    string(totalsJSON),
		Reason:        reason,
		CreatedAt:     res.CreatedAt,
	}, nil
}

// #endregion from-result

// #region list
// ListDecisions returns the most recent logged decisions, newest first.
func ListDecisions(db *sql.DB, limit int) ([]DecisionEntry, error) {
	rows, err := db.Query(
		`SELECT decision_id, winner, urgency, nudge_applied, inputs_json, situation_json, ballots_json, totals_json, reason, created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query decision log: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var nudged int
		var inputs, sit, ballots, totals, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.DecisionID, &e.Winner, &e.Urgency, &nudged,
			&inputs, &sit, &ballots, &totals, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision log: %w", err)
		}
		e.NudgeApplied = nudged != 0
		e.InputsJSON = inputs.String
		e.SituationJSON = sit.String
		e.BallotsJSON = ballots.String
		e.TotalsJSON = totals.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decision log: %w", err)
	}
	return entries, nil
}

// #endregion list

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
