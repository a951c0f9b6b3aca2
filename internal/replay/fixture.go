package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/config"
	"github.com/kdray/delivery-council/internal/decision"
	"github.com/kdray/delivery-council/internal/finance"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string              `json:"description"`
	Config      config.EngineConfig `json:"config"`
	Scenarios   []FixtureScenario   `json:"scenarios"`
}

// FixtureInputs mirrors finance.Inputs with JSON tags.
type FixtureInputs struct {
	Gross           float64 `json:"gross"`
	GasCost         float64 `json:"gas_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	Target          float64 `json:"target"`
}

// FixtureSituation mirrors agent.Situation with JSON tags.
type FixtureSituation struct {
	HoursAvailable float64 `json:"hours_available"`
	EnergyLevel    int     `json:"energy_level"`
	HoursYesterday float64 `json:"hours_yesterday"`
	FatigueFlagged bool    `json:"fatigue_flagged"`
	HazardFlagged  bool    `json:"hazard_flagged"`
	RestDebt       int     `json:"rest_debt"`
}

// FixtureScenario is one scenario with its expected winner.
type FixtureScenario struct {
	Name      string           `json:"name"`
	Inputs    FixtureInputs    `json:"inputs"`
	Situation FixtureSituation `json:"situation"`
	Expected  string           `json:"expected"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file. A fixture with no config
// section runs against the default engine configuration.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	f := Fixture{Config: config.Default()}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Engine builds the engine the fixture's scenarios should run against.
func (f *Fixture) Engine() *decision.Engine {
	return decision.New(f.Config.ToCurve(), f.Config.ToTally(), f.Config.ToProfiles(), agent.DefaultScorers())
}

// ToScenario converts a FixtureScenario to a domain Scenario.
func (fs *FixtureScenario) ToScenario() Scenario {
	return Scenario{
		Name: fs.Name,
		Inputs: finance.Inputs{
			Gross:           fs.Inputs.Gross,
			GasCost:         fs.Inputs.GasCost,
			MaintenanceCost: fs.Inputs.MaintenanceCost,
			Target:          fs.Inputs.Target,
		},
		Situation: agent.Situation{
			HoursAvailable: fs.Situation.HoursAvailable,
			EnergyLevel:    fs.Situation.EnergyLevel,
			HoursYesterday: fs.Situation.HoursYesterday,
			FatigueFlagged: fs.Situation.FatigueFlagged,
			HazardFlagged:  fs.Situation.HazardFlagged,
			RestDebt:       fs.Situation.RestDebt,
		},
		Expected: agent.Action(fs.Expected),
	}
}

// ScenarioList converts every fixture scenario to its domain form.
func (f *Fixture) ScenarioList() []Scenario {
	out := make([]Scenario, 0, len(f.Scenarios))
	for i := range f.Scenarios {
		out = append(out, f.Scenarios[i].ToScenario())
	}
	return out
}

// #endregion fixture-loader
