package gridworld

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeu5/finite-mdp/core"
)

type Goal struct {
	Row    int     `yaml:"row"`
	Col    int     `yaml:"col"`
	Reward float64 `yaml:"reward"`
}

// Config describes a windy gridworld. Wind blows upwards (towards row 0)
// with per-column base strength; on every move the wind is absent, at base
// strength, or at base strength plus one, with the configured probabilities.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// Wind is the base wind strength per column.
	Wind []int `yaml:"wind"`
	// WindProbs are the probabilities of no wind, base wind and base
	// wind + 1. Must sum to 1.
	WindProbs []float64 `yaml:"wind_probs"`
	// StepReward is the reward of every non-goal cell, typically negative.
	StepReward float64 `yaml:"step_reward"`
	// Goals are the absorbing cells and their rewards.
	Goals []Goal `yaml:"goals"`
}

// LoadConfig reads and validates a gridworld definition from a YAML file.
func LoadConfig(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gridworld config: %w", err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(bs, config); err != nil {
		return nil, fmt.Errorf("parsing gridworld config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must have positive dimensions, got %dx%d", c.Rows, c.Cols)
	}
	if len(c.Wind) != c.Cols {
		return fmt.Errorf("wind has %d entries, want one per column (%d)", len(c.Wind), c.Cols)
	}
	if len(c.WindProbs) != 3 {
		return fmt.Errorf("wind_probs has %d entries, want 3", len(c.WindProbs))
	}
	sum := 0.0
	for _, p := range c.WindProbs {
		if p < 0 {
			return fmt.Errorf("wind_probs entries must be non-negative")
		}
		sum += p
	}
	if math.Abs(sum-1) > core.ProbabilityTolerance {
		return fmt.Errorf("wind_probs sum to %g, want 1", sum)
	}
	if len(c.Goals) == 0 {
		return fmt.Errorf("grid needs at least one goal")
	}
	for _, g := range c.Goals {
		if g.Row < 0 || g.Row >= c.Rows || g.Col < 0 || g.Col >= c.Cols {
			return fmt.Errorf("goal (%d,%d) outside the %dx%d grid", g.Row, g.Col, c.Rows, c.Cols)
		}
	}
	return nil
}
