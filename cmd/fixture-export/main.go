package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdray/delivery-council/internal/config"
	"github.com/kdray/delivery-council/internal/history"
	"github.com/kdray/delivery-council/internal/logging"
	"github.com/kdray/delivery-council/internal/replay"
	_ "modernc.org/sqlite"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to council SQLite db")
	last := flag.Int("last", 10, "number of most recent decisions to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	desc := flag.String("desc", "exported from decision log", "fixture description")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/council.db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath, *desc); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run turns logged decisions into a replay fixture, with each row's recorded
// winner as the scenario expectation.
func run(dbPath string, last int, outPath, desc string) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	logged, err := logging.ListDecisions(store.DB(), last)
	if err != nil {
		return fmt.Errorf("list decisions: %w", err)
	}

	fixture := replay.Fixture{
		Description: desc,
		Config:      config.Default(),
	}

	for i := len(logged) - 1; i >= 0; i-- { // chronological order
		e := logged[i]
		if e.InputsJSON == "" || e.SituationJSON == "" {
			continue
		}
		var in replay.FixtureInputs
		var sit replay.FixtureSituation
		if err := json.Unmarshal([]byte(e.InputsJSON), &in); err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: bad inputs: %v\n", e.DecisionID, err)
			continue
		}
		if err := json.Unmarshal([]byte(e.SituationJSON), &sit); err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: bad situation: %v\n", e.DecisionID, err)
			continue
		}
		fixture.Scenarios = append(fixture.Scenarios, replay.FixtureScenario{
			Name:      e.DecisionID,
			Inputs:    in,
			Situation: sit,
			Expected:  e.Winner,
		})
	}

	if len(fixture.Scenarios) == 0 {
		return fmt.Errorf("no replayable decisions in %s", dbPath)
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("Exported %d scenario(s) to %s\n", len(fixture.Scenarios), outPath)
	return nil
}

// #endregion export
