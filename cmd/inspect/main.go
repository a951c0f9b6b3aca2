package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdray/delivery-council/internal/history"
	"github.com/kdray/delivery-council/internal/logging"
	_ "modernc.org/sqlite"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to council SQLite db")
	last := flag.Int("last", 20, "show N most recent decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	showHistory := flag.Bool("history", false, "show delivery history instead of the decision log")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/council.db [--last N] [--history] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *showHistory {
		err = runHistoryMode(store, *last, *jsonOut)
	} else {
		err = runDecisionMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region decision-mode

type decisionRow struct {
	DecisionID   string  `json:"decision_id"`
	Winner       string  `json:"winner"`
	Urgency      float64 `json:"urgency"`
	NudgeApplied bool    `json:"nudge_applied"`
	Totals       string  `json:"totals,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func runDecisionMode(store *history.Store, last int, jsonOut bool) error {
	entries, err := logging.ListDecisions(store.DB(), last)
	if err != nil {
		return err
	}

	rows := make([]decisionRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, decisionRow{
			DecisionID:   e.DecisionID,
			Winner:       e.Winner,
			Urgency:      e.Urgency,
			NudgeApplied: e.NudgeApplied,
			Totals:       e.TotalsJSON,
			CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-36s  %-6s  %7s  %-5s  %s\n", "DECISION", "WINNER", "URGENCY", "NUDGE", "CREATED")
	for _, r := range rows {
		nudge := ""
		if r.NudgeApplied {
			nudge = "yes"
		}
		fmt.Printf("%-36s  %-6s  %7.1f  %-5s  %s\n", r.DecisionID, r.Winner, r.Urgency, nudge, r.CreatedAt)
	}
	fmt.Printf("%d decision(s)\n", len(rows))
	return nil
}

// #endregion decision-mode

// #region history-mode

func runHistoryMode(store *history.Store, last int, jsonOut bool) error {
	entries, err := store.Recent(last)
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	fmt.Printf("%-10s  %-6s  %5s  %8s  %8s\n", "DAY", "CHOICE", "HOURS", "GROSS", "NET")
	for _, e := range entries {
		fmt.Printf("%-10s  %-6s  %5.1f  %8.2f  %8.2f\n", e.Day, e.Choice, e.Hours, e.Gross, e.Net)
	}
	fmt.Printf("%d entries\n", len(entries))
	return nil
}

// #endregion history-mode
