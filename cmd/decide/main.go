package main

// #region imports
import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/config"
	"github.com/kdray/delivery-council/internal/decision"
	"github.com/kdray/delivery-council/internal/finance"
	"github.com/kdray/delivery-council/internal/history"
	"github.com/kdray/delivery-council/internal/logging"
)

// #endregion

// #region main
func main() {
	gross := flag.Float64("gross", 0, "projected gross earnings for a working day ($)")
	gas := flag.Float64("gas", 0, "projected gas cost ($)")
	maint := flag.Float64("maint", 0, "projected maintenance cost ($)")
	target := flag.Float64("target", -1, "earnings target ($); omit to derive from --bills")

	bills := flag.String("bills", "", "upcoming bills as amount@yyyy-mm-dd, comma separated")
	cash := flag.Float64("cash", 0, "cash on hand ($), used with --bills")
	wants := flag.Float64("wants", 0, "discretionary wants cost ($), used with --bills")
	window := flag.Int("window", 7, "bill window in days, used with --bills")

	hoursAvail := flag.Float64("hours", 6, "hours available today")
	energy := flag.Int("energy", 3, "honest energy level, 1..5")
	restDebt := flag.Int("rest-debt", 0, "accumulated rest debt, 0..5")
	fatigue := flag.Bool("fatigue", false, "declare fatigue (safety flag)")
	hazard := flag.Bool("hazard", false, "declare weather/road hazard (safety flag)")

	cfgPath := flag.String("config", "", "optional engine config YAML")
	dbPath := flag.String("db", envOr("COUNCIL_DB", ""), "optional SQLite path for history and decision log")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	in := finance.Inputs{
		Gross:           *gross,
		GasCost:         *gas,
		MaintenanceCost: *maint,
	}
	switch {
	case *target >= 0:
		in.Target = *target
	case *bills != "":
		billList, err := parseBills(*bills)
		if err != nil {
			log.Fatalf("bills: %v", err)
		}
		pressure, err := finance.SummarizeBills(billList, *cash, *window, time.Now())
		if err != nil {
			log.Fatalf("bills: %v", err)
		}
		in.Target = finance.TargetFromBills(pressure, *cash, *wants)
		fmt.Printf("Bills: due %s $%.2f | shortfall $%.2f | next due in %dd | daily need $%.2f\n",
			windowLabel(*window), pressure.TotalDue, pressure.Shortfall, pressure.NextDueInDays, pressure.DailyNeed)
	default:
		log.Fatal("either --target or --bills is required")
	}

	sit := agent.Situation{
		HoursAvailable: *hoursAvail,
		EnergyLevel:    *energy,
		RestDebt:       *restDebt,
		FatigueFlagged: *fatigue,
		HazardFlagged:  *hazard,
	}

	var store *history.Store
	if *dbPath != "" {
		var err error
		store, err = history.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer store.Close()

		stats, err := store.Stats(7, 14, time.Now())
		if err != nil {
			log.Printf("history stats: %v", err)
		} else {
			sit.HoursYesterday = stats.HoursYesterday
			fmt.Printf("Recent: hours_yesterday=%.1f | avg_net_per_hr=$%.2f\n",
				stats.HoursYesterday, stats.AvgNetPerHour)
		}
	}

	eng := decision.New(cfg.ToCurve(), cfg.ToTally(), cfg.ToProfiles(), agent.DefaultScorers())
	res, err := eng.Decide(in, sit)
	if err != nil {
		log.Fatalf("decide: %v", err)
	}

	render(res)

	if store != nil {
		record(store, res, in, sit, cfg)
	}
}

// #endregion main

// #region render
func render(res decision.Result) {
	s := res.Snapshot
	fmt.Printf("\nFinance: gross $%.2f | net $%.2f | target $%.2f | gap $%.2f (%.1f%%)\n",
		s.Gross, s.Net, s.Target, s.Gap, 100*s.GapRatio)
	fmt.Printf("Urgency: %.1f/100\n", res.Urgency)

	fmt.Println("Ballots:")
	for _, e := range res.Ballot {
		fmt.Printf("  %-12s", e.Agent)
		for _, a := range agent.Actions() {
			fmt.Printf(" %s:%d", a, e.Vote[a])
		}
		fmt.Println()
	}

	fmt.Print("Totals:")
	for _, a := range agent.Actions() {
		fmt.Printf(" %s=%d", a, res.Tally.Totals[a])
	}
	fmt.Println()
	fmt.Printf("Runoff: %s vs %s (prefs %d-%d)\n",
		res.Tally.TopTwo[0], res.Tally.TopTwo[1],
		res.Tally.Preferences[res.Tally.TopTwo[0]], res.Tally.Preferences[res.Tally.TopTwo[1]])
	if res.Tally.NudgeApplied {
		fmt.Println("Near-tie nudge applied toward work.")
	}
	fmt.Printf("Winner: %s\n", res.Winner)
}

// #endregion render

// #region record
func record(store *history.Store, res decision.Result, in finance.Inputs, sit agent.Situation, cfg config.EngineConfig) {
	hours := cfg.Profiles[string(res.Winner)].Hours
	err := store.Append(history.Entry{
		DecisionID: res.ID,
		Day:        time.Now().Format("2006-01-02"),
		Choice:     res.Winner,
		Hours:      hours,
		Gross:      res.Snapshot.Gross,
		Net:        res.Snapshot.Net,
	})
	if err != nil {
		log.Printf("history append: %v", err)
	}

	entry, err := logging.EntryFromResult(res, in, sit, "")
	if err != nil {
		log.Printf("decision log: %v", err)
		return
	}
	if err := logging.LogDecision(store.DB(), entry); err != nil {
		log.Printf("decision log: %v", err)
	}
}

// #endregion record

// #region helpers
func parseBills(s string) ([]finance.Bill, error) {
	var bills []finance.Bill
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		amountStr, dateStr, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("bad bill %q, want amount@yyyy-mm-dd", part)
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("bad bill amount %q: %w", amountStr, err)
		}
		due, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad bill date %q: %w", dateStr, err)
		}
		bills = append(bills, finance.Bill{Amount: amount, DueDate: due})
	}
	return bills, nil
}

func windowLabel(days int) string {
	return fmt.Sprintf("next %dd", days)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
