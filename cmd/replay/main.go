package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/config"
	"github.com/kdray/delivery-council/internal/decision"
	"github.com/kdray/delivery-council/internal/finance"
	"github.com/kdray/delivery-council/internal/history"
	"github.com/kdray/delivery-council/internal/logging"
	"github.com/kdray/delivery-council/internal/replay"
	_ "modernc.org/sqlite"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to council SQLite db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	cfgPath := flag.String("config", "", "engine config YAML for DB mode")
	last := flag.Int("last", 20, "decisions to replay in DB mode")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/council.db [--last N] [--config cfg.yaml]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *cfgPath, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if f.Description != "" {
		fmt.Printf("Fixture: %s\n", f.Description)
	}
	return report(replay.Replay(f.ScenarioList(), f.Engine()))
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-evaluates logged decisions against the current engine
// configuration, using each row's recorded winner as the expectation.
func runDBMode(dbPath, cfgPath string, last int) int {
	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	cfg := config.Default()
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return 2
		}
	}

	logged, err := logging.ListDecisions(store.DB(), last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list decisions: %v\n", err)
		return 2
	}

	var scenarios []replay.Scenario
	for _, e := range logged {
		if e.InputsJSON == "" || e.SituationJSON == "" {
			continue
		}
		var in finance.Inputs
		var sit agent.Situation
		if err := json.Unmarshal([]byte(e.InputsJSON), &in); err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: bad inputs: %v\n", e.DecisionID, err)
			continue
		}
		if err := json.Unmarshal([]byte(e.SituationJSON), &sit); err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: bad situation: %v\n", e.DecisionID, err)
			continue
		}
		scenarios = append(scenarios, replay.Scenario{
			Name:      e.DecisionID,
			Inputs:    in,
			Situation: sit,
			Expected:  agent.Action(e.Winner),
		})
	}

	eng := decision.New(cfg.ToCurve(), cfg.ToTally(), cfg.ToProfiles(), agent.DefaultScorers())
	return report(replay.Replay(scenarios, eng))
}

// #endregion db-mode

// #region report

func report(outcomes []replay.Outcome) int {
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			fmt.Printf("ERROR %s: %v\n", o.Name, o.Err)
		case o.Expected == "":
			fmt.Printf("  --  %s: winner=%s urgency=%.1f\n", o.Name, o.Actual, o.Urgency)
		case o.Pass:
			fmt.Printf("  ok  %s: winner=%s\n", o.Name, o.Actual)
		default:
			fmt.Printf("FAIL  %s: expected=%s got=%s totals=%v\n", o.Name, o.Expected, o.Actual, o.Totals)
		}
	}

	s := replay.Summarize(outcomes)
	fmt.Printf("\n%d scenario(s): %d passed, %d failed, %d errored, %d unscored\n",
		s.Total, s.Passed, s.Failed, s.Errored, s.Unscored)
	if s.Failed > 0 || s.Errored > 0 {
		return 1
	}
	return 0
}

// #endregion report
