package agent

import "math"

// #region roster

// DefaultScorers returns the full council in its conventional order. Order is
// cosmetic: the tally is invariant under permutation.
func DefaultScorers() []Scorer {
	return []Scorer{
		RestPrior{},
		Money{},
		EnergyMatch{},
		ScheduleFit{},
		Safety{},
	}
}

// #endregion roster

// #region money

// shortEarningFactor discounts SHORT's earning power relative to FULL.
const shortEarningFactor = 0.7

// Money pushes toward work in proportion to financial urgency and rewards
// NONE only when urgency is near zero.
type Money struct{}

func (Money) Name() string { return "Money" }

func (Money) Score(ctx Context) Vote {
	u := ctx.Urgency / 100
	return Vote{
		ActionNone:  clamp(int(math.Round(5 * (1 - u)))),
		ActionShort: clamp(int(math.Round(5 * u * shortEarningFactor))),
		ActionFull:  clamp(int(math.Round(5 * u))),
	}
}

// #endregion money

// #region energy-match

// fatigueHours is the previous-day workload that costs one effective energy level.
const fatigueHours = 6.0

// EnergyMatch compares each action's energy requirement against what is
// actually available today, discounted after a heavy previous day.
type EnergyMatch struct{}

func (EnergyMatch) Name() string { return "EnergyMatch" }

func (EnergyMatch) Score(ctx Context) Vote {
	have := ctx.Situation.EnergyLevel
	if ctx.Situation.HoursYesterday >= fatigueHours && have > 1 {
		have--
	}

	v := Vote{}
	for _, a := range Actions() {
		if a == ActionNone {
			if ctx.Snapshot.Gap <= 0 {
				v[a] = 5
			} else {
				v[a] = 3
			}
			continue
		}
		need := ctx.Profiles[a].Energy
		switch {
		case need <= have:
			v[a] = 5
		case need == have+1:
			v[a] = 3
		default:
			v[a] = 1
		}
	}
	return v
}

// #endregion energy-match

// #region schedule-fit

// ScheduleFit rejects actions that do not fit the day and mildly prefers the
// ones that use the available hours well.
type ScheduleFit struct{}

func (ScheduleFit) Name() string { return "ScheduleFit" }

func (ScheduleFit) Score(ctx Context) Vote {
	avail := ctx.Situation.HoursAvailable
	v := Vote{}
	for _, a := range Actions() {
		h := ctx.Profiles[a].Hours
		switch {
		case h == 0:
			v[a] = 4
		case h > avail:
			v[a] = 0
		default:
			useRatio := h / math.Max(0.1, avail)
			v[a] = clamp(int(math.Round(2 + 3*useRatio)))
		}
	}
	return v
}

// #endregion schedule-fit

// #region safety

// Safety floors work actions under a declared fatigue or hazard flag, or when
// the day's projected net is non-positive (working would lose money).
type Safety struct{}

func (Safety) Name() string { return "Safety" }

func (Safety) Score(ctx Context) Vote {
	unsafe := ctx.Situation.FatigueFlagged || ctx.Situation.HazardFlagged
	v := Vote{ActionNone: 5}
	for _, a := range []Action{ActionShort, ActionFull} {
		if unsafe || ctx.Snapshot.Net <= 0 {
			v[a] = 1
		} else {
			v[a] = 4
		}
	}
	return v
}

// #endregion safety

// #region rest-prior

// RestPrior speaks for recovery: NONE earns the accumulated rest debt,
// regardless of how loud Money is.
type RestPrior struct{}

func (RestPrior) Name() string { return "RestPrior" }

func (RestPrior) Score(ctx Context) Vote {
	return Vote{
		ActionNone:  clamp(ctx.Situation.RestDebt),
		ActionShort: 0,
		ActionFull:  0,
	}
}

// #endregion rest-prior
