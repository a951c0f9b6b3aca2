package urgency

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks out-of-range curve parameters or inputs.
var ErrInvalidInput = errors.New("invalid urgency input")

// #region curve
// Curve maps a financial gap ratio to an urgency score in [0,100].
// Soft is roughly where the curve crosses its midpoint; Scale controls
// steepness (smaller = steeper).
type Curve struct {
	Soft  float64
	Scale float64
}

// DefaultCurve returns the stock curve tuned for gap-ratio inputs.
func DefaultCurve() Curve {
	return Curve{Soft: 0.4, Scale: 0.25}
}

// #endregion curve

// #region score
// Score evaluates the curve at the given gap ratio.
//
// The shape is a logistic normalized so that Score(0) is exactly 0 and the
// score saturates toward 100 for large ratios. Strictly increasing for any
// valid (Soft, Scale).
func (c Curve) Score(gapRatio float64) (float64, error) {
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return 0, fmt.Errorf("%w: scale must be positive", ErrInvalidInput)
	}
	if math.IsNaN(c.Soft) || math.IsInf(c.Soft, 0) {
		return 0, fmt.Errorf("%w: soft is not finite", ErrInvalidInput)
	}
	if gapRatio < 0 || math.IsNaN(gapRatio) || math.IsInf(gapRatio, 0) {
		return 0, fmt.Errorf("%w: gap ratio must be finite and non-negative", ErrInvalidInput)
	}

	floor := sigmoid(-c.Soft / c.Scale)
	raw := sigmoid((gapRatio - c.Soft) / c.Scale)
	return 100 * (raw - floor) / (1 - floor), nil
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// #endregion score
