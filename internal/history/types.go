package history

import (
	"time"

	"github.com/kdray/delivery-council/internal/agent"
)

// #region entry
// Entry is one recorded day of delivery work (or deliberate rest).
type Entry struct {
	DecisionID  string
	Day         string // ISO date yyyy-mm-dd
	Choice      agent.Action
	Hours       float64
	Gross       float64
	Net         float64
	ActualHours float64 // 0 until the user records actuals
	ActualNet   float64
	CreatedAt   time.Time
}

// #endregion entry

// #region stats
// Stats summarizes recent history for agent context.
type Stats struct {
	HoursYesterday float64 // total hours on the most recent recorded day
	AvgNetPerHour  float64 // over recent entries with hours > 0
}

// #endregion stats
