package finance

import (
	"fmt"
	"math"
	"time"
)

// noPressureDays is reported when no bill is due on or after today.
const noPressureDays = 365

// wantsWeight discounts discretionary spending relative to bills when
// deriving the earnings target.
const wantsWeight = 0.5

// #region summarize
// SummarizeBills computes near-term bill pressure: what is due inside the
// window, how much of it cash does not cover, and the per-day pace needed to
// close the shortfall before the closest due date. Bills already past due
// (before today) are ignored.
func SummarizeBills(bills []Bill, cashOnHand float64, windowDays int, today time.Time) (BillPressure, error) {
	if math.IsNaN(cashOnHand) || math.IsInf(cashOnHand, 0) || cashOnHand < 0 {
		return BillPressure{}, fmt.Errorf("%w: cash_on_hand must be finite and non-negative", ErrInvalidInput)
	}
	if windowDays <= 0 {
		return BillPressure{}, fmt.Errorf("%w: window_days must be positive", ErrInvalidInput)
	}

	day := today.Truncate(24 * time.Hour)
	totalDue := 0.0
	nextDue := noPressureDays
	upcoming := false

	for _, b := range bills {
		if b.Amount < 0 || math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
			return BillPressure{}, fmt.Errorf("%w: bill amount must be finite and non-negative", ErrInvalidInput)
		}
		daysOut := int(b.DueDate.Truncate(24 * time.Hour).Sub(day).Hours() / 24)
		if daysOut < 0 {
			continue
		}
		upcoming = true
		if daysOut < nextDue {
			nextDue = daysOut
		}
		if daysOut <= windowDays {
			totalDue += b.Amount
		}
	}

	if !upcoming {
		return BillPressure{NextDueInDays: noPressureDays}, nil
	}

	shortfall := math.Max(0, totalDue-cashOnHand)
	daysUntilDue := nextDue
	if daysUntilDue < 1 {
		daysUntilDue = 1
	}

	return BillPressure{
		TotalDue:      totalDue,
		Shortfall:     shortfall,
		NextDueInDays: nextDue,
		DailyNeed:     shortfall / float64(daysUntilDue),
	}, nil
}

// #endregion summarize

// #region target
// TargetFromBills derives the engine's earnings target from bill pressure
// plus discounted wants. Wants only add pressure for the part that leftover
// cash (after bills) cannot cover.
func TargetFromBills(p BillPressure, cashOnHand, wantsCost float64) float64 {
	leftover := math.Max(0, cashOnHand-p.TotalDue)
	wantsGap := math.Max(0, wantsCost-leftover)
	return p.Shortfall + wantsWeight*wantsGap
}

// #endregion target
