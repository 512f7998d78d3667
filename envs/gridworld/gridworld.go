package gridworld

import (
	"strconv"

	"github.com/zeu5/finite-mdp/core"
)

// Cell is one grid position. Row 0 is the top of the grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) Hash() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

type Move string

func (m Move) Hash() string {
	return string(m)
}

const (
	Up    = Move("up")
	Down  = Move("down")
	Left  = Move("left")
	Right = Move("right")
)

var moves = []core.Action{Up, Down, Left, Right}

// Gridworld is a stochastic windy gridworld: moves shift one cell, then the
// wind pushes the agent towards row 0 by the column's base strength, one
// more than that, or not at all. Goal cells are absorbing.
type Gridworld struct {
	config *Config
	states []core.State
	goals  map[string]float64
}

var _ core.Environment = &Gridworld{}

func New(config *Config) (*Gridworld, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	states := make([]core.State, 0, config.Rows*config.Cols)
	for r := 0; r < config.Rows; r++ {
		for c := 0; c < config.Cols; c++ {
			states = append(states, Cell{Row: r, Col: c})
		}
	}
	goals := make(map[string]float64, len(config.Goals))
	for _, g := range config.Goals {
		goals[Cell{Row: g.Row, Col: g.Col}.Hash()] = g.Reward
	}
	return &Gridworld{
		config: config,
		states: states,
		goals:  goals,
	}, nil
}

func (g *Gridworld) States() []core.State {
	return g.states
}

func (g *Gridworld) Actions(state core.State) []core.Action {
	if g.IsFinal(state) {
		return nil
	}
	return moves
}

func (g *Gridworld) IsFinal(state core.State) bool {
	_, ok := g.goals[state.Hash()]
	return ok
}

func (g *Gridworld) Reward(state core.State) float64 {
	if reward, ok := g.goals[state.Hash()]; ok {
		return reward
	}
	return g.config.StepReward
}

func (g *Gridworld) Transition(state core.State, action core.Action) core.Distribution {
	cell := state.(Cell)
	dest := g.shift(cell, action.(Move))
	base := g.config.Wind[dest.Col]

	dist := make(core.Distribution)
	add := func(strength int, p float64) {
		if p <= 0 {
			return
		}
		landed := Cell{Row: g.clipRow(dest.Row - strength), Col: dest.Col}
		dist[landed.Hash()] += p
	}
	add(0, g.config.WindProbs[0])
	add(base, g.config.WindProbs[1])
	add(base+1, g.config.WindProbs[2])
	return dist
}

// Start is the bottom-left corner.
func (g *Gridworld) Start() core.State {
	return Cell{Row: g.config.Rows - 1, Col: 0}
}

func (g *Gridworld) shift(cell Cell, move Move) Cell {
	switch move {
	case Up:
		cell.Row--
	case Down:
		cell.Row++
	case Left:
		cell.Col--
	case Right:
		cell.Col++
	}
	cell.Row = g.clipRow(cell.Row)
	if cell.Col < 0 {
		cell.Col = 0
	}
	if cell.Col >= g.config.Cols {
		cell.Col = g.config.Cols - 1
	}
	return cell
}

func (g *Gridworld) clipRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= g.config.Rows {
		return g.config.Rows - 1
	}
	return row
}
