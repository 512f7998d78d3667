package gridworld

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/zeu5/finite-mdp/core"
)

var arrows = map[string]string{
	Up.Hash():    "^",
	Down.Hash():  "v",
	Left.Hash():  "<",
	Right.Hash(): ">",
}

// RenderValues formats the value function as a grid, goal cells in green.
func (g *Gridworld) RenderValues(vf core.ValueFunction) string {
	b := new(strings.Builder)
	for r := 0; r < g.config.Rows; r++ {
		for c := 0; c < g.config.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			value := fmt.Sprintf("%8.3f", vf[cell.Hash()])
			if g.IsFinal(cell) {
				value = aurora.Green(value).String()
			}
			b.WriteString(value)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPolicy draws the greedy action of every cell as an arrow, goals as
// a green G.
func (g *Gridworld) RenderPolicy(policy core.Policy) string {
	b := new(strings.Builder)
	for r := 0; r < g.config.Rows; r++ {
		for c := 0; c < g.config.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if g.IsFinal(cell) {
				b.WriteString(aurora.Green("G").String())
			} else if action, ok := policy[cell.Hash()]; ok {
				b.WriteString(arrows[action.Hash()])
			} else {
				b.WriteString(".")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
