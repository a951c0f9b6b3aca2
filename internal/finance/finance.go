package finance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks malformed numeric input: negative or non-finite values.
var ErrInvalidInput = errors.New("invalid finance input")

// #region snapshot
// NewSnapshot computes the derived fields from raw inputs. Fails fast on
// negative or non-finite values; no clamping happens here.
func NewSnapshot(in Inputs) (Snapshot, error) {
	fields := []struct {
		name string
		val  float64
	}{
		{"gross", in.Gross},
		{"gas_cost", in.GasCost},
		{"maintenance_cost", in.MaintenanceCost},
		{"target", in.Target},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return Snapshot{}, fmt.Errorf("%w: %s is not finite", ErrInvalidInput, f.name)
		}
		if f.val < 0 {
			return Snapshot{}, fmt.Errorf("%w: %s is negative (%.2f)", ErrInvalidInput, f.name, f.val)
		}
	}

	net := in.Gross - in.GasCost - in.MaintenanceCost
	gap := math.Max(0, in.Target-net)
	ratio := 0.0
	if in.Target > 0 {
		ratio = gap / in.Target
	}

	return Snapshot{
		Gross:           in.Gross,
		GasCost:         in.GasCost,
		MaintenanceCost: in.MaintenanceCost,
		Net:             net,
		Target:          in.Target,
		Gap:             gap,
		GapRatio:        ratio,
	}, nil
}

// #endregion snapshot
