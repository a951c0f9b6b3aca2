package agent

import (
	"testing"

	"github.com/kdray/delivery-council/internal/finance"
)

func makeContext(urgency float64, sit Situation) Context {
	snap, err := finance.NewSnapshot(finance.Inputs{Gross: 100, GasCost: 20, MaintenanceCost: 10, Target: 150})
	if err != nil {
		panic(err)
	}
	return Context{
		Snapshot:  snap,
		Urgency:   urgency,
		Situation: sit,
		Profiles:  DefaultProfiles(),
	}
}

func TestEveryScorerReturnsValidVote(t *testing.T) {
	ctx := makeContext(42, Situation{HoursAvailable: 4, EnergyLevel: 3, RestDebt: 2})
	for _, s := range DefaultScorers() {
		v := s.Score(ctx)
		if err := v.Validate(); err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
	}
}

func TestScorersDeterministic(t *testing.T) {
	ctx := makeContext(63, Situation{HoursAvailable: 5, EnergyLevel: 2, RestDebt: 4, HoursYesterday: 7})
	for _, s := range DefaultScorers() {
		first := s.Score(ctx)
		for i := 0; i < 3; i++ {
			again := s.Score(ctx)
			for _, a := range Actions() {
				if first[a] != again[a] {
					t.Fatalf("%s not deterministic for %s: %d vs %d", s.Name(), a, first[a], again[a])
				}
			}
		}
	}
}

func TestMoneyTracksUrgency(t *testing.T) {
	low := Money{}.Score(makeContext(0, Situation{}))
	if low[ActionNone] != 5 || low[ActionShort] != 0 || low[ActionFull] != 0 {
		t.Fatalf("zero urgency vote = %v, want NONE only", low)
	}

	high := Money{}.Score(makeContext(100, Situation{}))
	if high[ActionFull] != 5 {
		t.Fatalf("full urgency FULL = %d, want 5", high[ActionFull])
	}
	if high[ActionNone] != 0 {
		t.Fatalf("full urgency NONE = %d, want 0", high[ActionNone])
	}
	if high[ActionShort] >= high[ActionFull] {
		t.Fatalf("SHORT (%d) should trail FULL (%d) at high urgency", high[ActionShort], high[ActionFull])
	}
}

func TestEnergyMatchPenalizesOverreach(t *testing.T) {
	// energy 2: SHORT needs 3 (one over), FULL needs 4 (two over)
	v := EnergyMatch{}.Score(makeContext(50, Situation{EnergyLevel: 2, HoursAvailable: 6}))
	if v[ActionShort] != 3 {
		t.Fatalf("SHORT = %d, want 3 for one-over requirement", v[ActionShort])
	}
	if v[ActionFull] != 1 {
		t.Fatalf("FULL = %d, want 1 for out-of-reach requirement", v[ActionFull])
	}

	// energy 5 covers everything
	v = EnergyMatch{}.Score(makeContext(50, Situation{EnergyLevel: 5, HoursAvailable: 6}))
	if v[ActionShort] != 5 || v[ActionFull] != 5 {
		t.Fatalf("high energy vote = %v, want 5s for work actions", v)
	}
}

func TestEnergyMatchFatigueDiscount(t *testing.T) {
	rested := EnergyMatch{}.Score(makeContext(50, Situation{EnergyLevel: 4, HoursYesterday: 2}))
	tired := EnergyMatch{}.Score(makeContext(50, Situation{EnergyLevel: 4, HoursYesterday: 7}))
	if rested[ActionFull] != 5 {
		t.Fatalf("rested FULL = %d, want 5", rested[ActionFull])
	}
	if tired[ActionFull] != 3 {
		t.Fatalf("tired FULL = %d, want 3 after a heavy previous day", tired[ActionFull])
	}
}

func TestScheduleFitBlocksOverrun(t *testing.T) {
	v := ScheduleFit{}.Score(makeContext(50, Situation{HoursAvailable: 4, EnergyLevel: 3}))
	if v[ActionFull] != 0 {
		t.Fatalf("FULL = %d, want 0 when 6h does not fit in 4h", v[ActionFull])
	}
	if v[ActionShort] == 0 {
		t.Fatalf("SHORT should get partial credit when FULL overruns, got 0")
	}
	if v[ActionNone] != 4 {
		t.Fatalf("NONE = %d, want 4", v[ActionNone])
	}
}

func TestSafetyFlagsFloorWork(t *testing.T) {
	calm := Safety{}.Score(makeContext(50, Situation{EnergyLevel: 3}))
	if calm[ActionShort] != 4 || calm[ActionFull] != 4 {
		t.Fatalf("unflagged work scores = %v, want 4s", calm)
	}

	flagged := Safety{}.Score(makeContext(50, Situation{EnergyLevel: 3, HazardFlagged: true}))
	if flagged[ActionShort] != 1 || flagged[ActionFull] != 1 {
		t.Fatalf("hazard-flagged work scores = %v, want 1s", flagged)
	}
	if flagged[ActionNone] != 5 {
		t.Fatalf("NONE = %d, want 5 under hazard", flagged[ActionNone])
	}

	fatigued := Safety{}.Score(makeContext(50, Situation{EnergyLevel: 3, FatigueFlagged: true}))
	if fatigued[ActionFull] != 1 {
		t.Fatalf("fatigue-flagged FULL = %d, want 1", fatigued[ActionFull])
	}
}

func TestSafetyNegativeNet(t *testing.T) {
	snap, err := finance.NewSnapshot(finance.Inputs{Gross: 20, GasCost: 25, MaintenanceCost: 5, Target: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := Context{Snapshot: snap, Urgency: 90, Situation: Situation{EnergyLevel: 5}, Profiles: DefaultProfiles()}
	v := Safety{}.Score(ctx)
	if v[ActionShort] != 1 || v[ActionFull] != 1 {
		t.Fatalf("losing-money work scores = %v, want 1s", v)
	}
}

func TestRestPriorIgnoresUrgency(t *testing.T) {
	v := RestPrior{}.Score(makeContext(95, Situation{RestDebt: 4}))
	if v[ActionNone] != 4 {
		t.Fatalf("NONE = %d, want rest debt 4 regardless of urgency", v[ActionNone])
	}
	if v[ActionShort] != 0 || v[ActionFull] != 0 {
		t.Fatalf("work scores = %v, want 0s", v)
	}

	v = RestPrior{}.Score(makeContext(95, Situation{RestDebt: 9}))
	if v[ActionNone] != 5 {
		t.Fatalf("NONE = %d, want clamp to 5", v[ActionNone])
	}
}

func TestVoteValidate(t *testing.T) {
	good := Vote{ActionNone: 0, ActionShort: 3, ActionFull: 5}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := Vote{ActionNone: 0, ActionShort: 3}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing action")
	}

	over := Vote{ActionNone: 0, ActionShort: 3, ActionFull: 6}
	if err := over.Validate(); err == nil {
		t.Fatal("expected error for score above 5")
	}

	unknown := Vote{ActionNone: 0, ActionShort: 3, Action("DOUBLE"): 2}
	if err := unknown.Validate(); err == nil {
		t.Fatal("expected error for unknown action")
	}
}
