package decision

import (
	"time"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/finance"
	"github.com/kdray/delivery-council/internal/vote"
)

// #region result
// Result is the engine's final artifact for one decision: the winner plus
// everything a presentation or logging layer needs to explain it.
type Result struct {
	ID        string // uuid, unique per invocation
	CreatedAt time.Time

	Snapshot finance.Snapshot
	Urgency  float64 // 0..100
	Ballot   vote.Ballot
	Tally    vote.Result
	Winner   agent.Action
}

// #endregion result
