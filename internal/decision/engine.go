package decision

// #region imports
import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/finance"
	"github.com/kdray/delivery-council/internal/urgency"
	"github.com/kdray/delivery-council/internal/vote"
)

// #endregion

// #region engine

// Engine runs the full pipeline: snapshot → urgency → agents → ballot → tally.
// It holds only configuration; every Decide call builds fresh immutable
// records and leaves nothing behind.
type Engine struct {
	curve    urgency.Curve
	tallyCfg vote.TallyConfig
	profiles map[agent.Action]agent.Profile
	scorers  []agent.Scorer
}

// New creates an engine from explicit configuration.
func New(curve urgency.Curve, tallyCfg vote.TallyConfig, profiles map[agent.Action]agent.Profile, scorers []agent.Scorer) *Engine {
	return &Engine{
		curve:    curve,
		tallyCfg: tallyCfg,
		profiles: profiles,
		scorers:  scorers,
	}
}

// NewDefault creates an engine with the stock curve, tally parameters,
// action profiles, and the full five-agent council.
func NewDefault() *Engine {
	return New(urgency.DefaultCurve(), vote.DefaultTallyConfig(), agent.DefaultProfiles(), agent.DefaultScorers())
}

// #endregion engine

// #region decide

// Decide runs one full decision. Apart from ID and CreatedAt, identical
// inputs always yield identical results.
func (e *Engine) Decide(in finance.Inputs, sit agent.Situation) (Result, error) {
	snap, err := finance.NewSnapshot(in)
	if err != nil {
		return Result{}, fmt.Errorf("snapshot: %w", err)
	}

	u, err := e.curve.Score(snap.GapRatio)
	if err != nil {
		return Result{}, fmt.Errorf("urgency: %w", err)
	}

	ctx := agent.Context{
		Snapshot:  snap,
		Urgency:   u,
		Situation: sit,
		Profiles:  e.profiles,
	}

	ballot, err := vote.Build(ctx, e.scorers)
	if err != nil {
		return Result{}, fmt.Errorf("ballot: %w", err)
	}

	tally, err := vote.Tally(ballot, e.tallyCfg)
	if err != nil {
		return Result{}, fmt.Errorf("tally: %w", err)
	}

	return Result{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Snapshot:  snap,
		Urgency:   u,
		Ballot:    ballot,
		Tally:     tally,
		Winner:    tally.Winner,
	}, nil
}

// #endregion decide
