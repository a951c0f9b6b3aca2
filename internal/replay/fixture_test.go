package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdray/delivery-council/internal/agent"
)

const sampleFixture = `{
  "description": "two canonical days",
  "config": {
    "tally": {"nudge_threshold": 1, "work_bias": 0.6}
  },
  "scenarios": [
    {
      "name": "quiet week",
      "inputs": {"gross": 200, "gas_cost": 40, "maintenance_cost": 20, "target": 150},
      "situation": {"hours_available": 6, "energy_level": 2},
      "expected": "NONE"
    },
    {
      "name": "rent crunch",
      "inputs": {"gross": 50, "gas_cost": 30, "maintenance_cost": 10, "target": 200},
      "situation": {"hours_available": 6, "energy_level": 4},
      "expected": "FULL"
    }
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtureAndReplay(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, sampleFixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description != "two canonical days" {
		t.Fatalf("description = %q", f.Description)
	}
	if len(f.Scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(f.Scenarios))
	}
	// unspecified config sections fall back to defaults
	if f.Config.Curve.Scale != 0.25 {
		t.Fatalf("curve scale = %v, want default 0.25", f.Config.Curve.Scale)
	}

	outcomes := Replay(f.ScenarioList(), f.Engine())
	s := Summarize(outcomes)
	if s.Passed != 2 || s.Failed != 0 {
		t.Fatalf("summary = %+v (outcomes %+v)", s, outcomes)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixtureRejectsBadConfig(t *testing.T) {
	bad := `{"config": {"curve": {"soft": 0.4, "scale": -1}}, "scenarios": []}`
	if _, err := LoadFixture(writeFixture(t, bad)); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestFixtureScenarioConversion(t *testing.T) {
	fs := FixtureScenario{
		Name:      "conv",
		Inputs:    FixtureInputs{Gross: 10, GasCost: 2, MaintenanceCost: 1, Target: 20},
		Situation: FixtureSituation{HoursAvailable: 4, EnergyLevel: 3, RestDebt: 2, HazardFlagged: true},
		Expected:  "SHORT",
	}
	sc := fs.ToScenario()
	if sc.Inputs.Gross != 10 || sc.Situation.RestDebt != 2 || !sc.Situation.HazardFlagged {
		t.Fatalf("conversion lost fields: %+v", sc)
	}
	if sc.Expected != agent.ActionShort {
		t.Fatalf("expected = %s", sc.Expected)
	}
}
