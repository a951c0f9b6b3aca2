package finance

import "time"

// #region inputs
// Inputs are the raw numbers for one day's decision, supplied by the CLI or
// config layer. All values are dollars.
type Inputs struct {
	Gross           float64 `json:"gross"`
	GasCost         float64 `json:"gas_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	Target          float64 `json:"target"`
}

// #endregion inputs

// #region snapshot
// Snapshot is the immutable financial picture for a single decision.
// Built once per decision via NewSnapshot, never mutated.
type Snapshot struct {
	Gross           float64
	GasCost         float64
	MaintenanceCost float64
	Net             float64
	Target          float64
	Gap             float64 // max(0, Target - Net)
	GapRatio        float64 // Gap / Target when Target > 0, else 0
}

// #endregion snapshot

// #region bill
// Bill is a single upcoming obligation.
type Bill struct {
	Amount  float64
	DueDate time.Time
}

// BillPressure summarizes near-term bill load against cash on hand.
type BillPressure struct {
	TotalDue      float64 // total due within the window
	Shortfall     float64 // amount not covered by cash
	NextDueInDays int     // days until the closest due bill
	DailyNeed     float64 // dollars/day to close the shortfall before the next due date
}

// #endregion bill
