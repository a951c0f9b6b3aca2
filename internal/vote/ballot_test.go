package vote

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/finance"
)

func buildContext(t *testing.T) agent.Context {
	t.Helper()
	snap, err := finance.NewSnapshot(finance.Inputs{Gross: 50, GasCost: 30, MaintenanceCost: 10, Target: 200})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return agent.Context{
		Snapshot:  snap,
		Urgency:   88,
		Situation: agent.Situation{HoursAvailable: 6, EnergyLevel: 4, RestDebt: 1},
		Profiles:  agent.DefaultProfiles(),
	}
}

func TestBuildPreservesAgentIdentity(t *testing.T) {
	ctx := buildContext(t)
	scorers := agent.DefaultScorers()

	b, err := Build(ctx, scorers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != len(scorers) {
		t.Fatalf("ballot has %d entries, want %d", len(b), len(scorers))
	}
	for i, s := range scorers {
		if b[i].Agent != s.Name() {
			t.Fatalf("entry %d agent = %s, want %s", i, b[i].Agent, s.Name())
		}
		if err := b[i].Vote.Validate(); err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
	}
}

func TestBuildOrderDoesNotAffectTally(t *testing.T) {
	ctx := buildContext(t)
	forward := agent.DefaultScorers()
	reversed := make([]agent.Scorer, len(forward))
	for i, s := range forward {
		reversed[len(forward)-1-i] = s
	}

	b1, err := Build(ctx, forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, err := Build(ctx, reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r1, err := Tally(b1, DefaultTallyConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Tally(b2, DefaultTallyConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("tally depends on agent order:\n%+v\n%+v", r1, r2)
	}
}

type badScorer struct{}

func (badScorer) Name() string { return "Broken" }
func (badScorer) Score(agent.Context) agent.Vote {
	return agent.Vote{agent.ActionNone: 7, agent.ActionShort: 0, agent.ActionFull: 0}
}

func TestBuildRejectsOutOfRangeVote(t *testing.T) {
	ctx := buildContext(t)
	_, err := Build(ctx, []agent.Scorer{badScorer{}})
	if !errors.Is(err, agent.ErrScoreRange) {
		t.Fatalf("expected ErrScoreRange, got %v", err)
	}
}
