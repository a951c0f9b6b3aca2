// Package config loads engine tunables from YAML. Every knob the original
// sketch buried as a literal (curve soft/scale, work bias, action hour and
// energy requirements) lives here with a named default.
package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kdray/delivery-council/internal/agent"
	"github.com/kdray/delivery-council/internal/urgency"
	"github.com/kdray/delivery-council/internal/vote"
)

// #endregion

// #region types

// CurveConfig models the urgency curve parameters.
type CurveConfig struct {
	Soft  float64 `yaml:"soft" json:"soft"`
	Scale float64 `yaml:"scale" json:"scale"`
}

// TallyConfig models the runoff tie-break parameters.
type TallyConfig struct {
	NudgeThreshold float64 `yaml:"nudge_threshold" json:"nudge_threshold"`
	WorkBias       float64 `yaml:"work_bias" json:"work_bias"`
}

// ProfileConfig models one action's requirements.
type ProfileConfig struct {
	Hours  float64 `yaml:"hours" json:"hours"`
	Energy int     `yaml:"energy" json:"energy"`
}

// EngineConfig is the full tunable surface of the decision engine.
type EngineConfig struct {
	Curve    CurveConfig              `yaml:"curve" json:"curve"`
	Tally    TallyConfig              `yaml:"tally" json:"tally"`
	Profiles map[string]ProfileConfig `yaml:"profiles" json:"profiles"`
}

// #endregion types

// #region defaults

// Default returns the stock configuration.
func Default() EngineConfig {
	curve := urgency.DefaultCurve()
	tally := vote.DefaultTallyConfig()
	profiles := map[string]ProfileConfig{}
	for a, p := range agent.DefaultProfiles() {
		profiles[string(a)] = ProfileConfig{Hours: p.Hours, Energy: p.Energy}
	}
	return EngineConfig{
		Curve:    CurveConfig{Soft: curve.Soft, Scale: curve.Scale},
		Tally:    TallyConfig{NudgeThreshold: tally.NudgeThreshold, WorkBias: tally.WorkBias},
		Profiles: profiles,
	}
}

// #endregion defaults

// #region load

// Load reads an EngineConfig from a YAML file. Missing sections fall back to
// defaults; the merged config is validated before returning.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load

// #region validate

// Validate checks ranges the engine will fail fast on anyway, so bad config
// files surface at load time with a file-level error.
func (c EngineConfig) Validate() error {
	if c.Curve.Scale <= 0 {
		return fmt.Errorf("curve.scale must be positive, got %g", c.Curve.Scale)
	}
	if c.Curve.Soft < 0 {
		return fmt.Errorf("curve.soft must be non-negative, got %g", c.Curve.Soft)
	}
	if c.Tally.NudgeThreshold < 0 {
		return fmt.Errorf("tally.nudge_threshold must be non-negative, got %g", c.Tally.NudgeThreshold)
	}
	if c.Tally.WorkBias < 0 {
		return fmt.Errorf("tally.work_bias must be non-negative, got %g", c.Tally.WorkBias)
	}
	for _, a := range agent.Actions() {
		p, ok := c.Profiles[string(a)]
		if !ok {
			return fmt.Errorf("profiles missing action %s", a)
		}
		if p.Hours < 0 || p.Energy < 0 {
			return fmt.Errorf("profile %s has negative requirements", a)
		}
	}
	return nil
}

// #endregion validate

// #region converters

// ToCurve converts the curve section to its engine type.
func (c EngineConfig) ToCurve() urgency.Curve {
	return urgency.Curve{Soft: c.Curve.Soft, Scale: c.Curve.Scale}
}

// ToTally converts the tally section to its engine type.
func (c EngineConfig) ToTally() vote.TallyConfig {
	return vote.TallyConfig{NudgeThreshold: c.Tally.NudgeThreshold, WorkBias: c.Tally.WorkBias}
}

// ToProfiles converts the profiles section to its engine type.
func (c EngineConfig) ToProfiles() map[agent.Action]agent.Profile {
	out := map[agent.Action]agent.Profile{}
	for name, p := range c.Profiles {
		out[agent.Action(name)] = agent.Profile{Hours: p.Hours, Energy: p.Energy}
	}
	return out
}

// #endregion converters
