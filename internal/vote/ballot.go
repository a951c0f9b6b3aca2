package vote

import (
	"fmt"

	"github.com/kdray/delivery-council/internal/agent"
)

// #region build
// Build invokes every scorer over the same immutable context and assembles a
// ballot. Votes are validated at this boundary; a scorer returning an
// incomplete or out-of-range vote fails the whole build.
//
// Scorer order only affects display order, never the tally.
func Build(ctx agent.Context, scorers []agent.Scorer) (Ballot, error) {
	b := make(Ballot, 0, len(scorers))
	for _, s := range scorers {
		v := s.Score(ctx)
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("agent %s: %w", s.Name(), err)
		}
		b = append(b, Entry{Agent: s.Name(), Vote: v})
	}
	return b, nil
}

// #endregion build
