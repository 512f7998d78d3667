package analysis

import (
	"fmt"

	"github.com/gosuri/uilive"

	"github.com/zeu5/finite-mdp/core"
	"github.com/zeu5/finite-mdp/solver"
)

// Renderer turns a value function snapshot into a printable block, typically
// supplied by the environment (e.g. a grid rendering).
type Renderer func(core.ValueFunction) string

// TerminalObserver displays the sweep counter and delta in place on the
// terminal, optionally followed by an environment-specific rendering of the
// current value function. The solver invokes it after each join barrier, so
// writes never race with worker computation.
type TerminalObserver struct {
	writer *uilive.Writer
	render Renderer
}

var _ solver.Observer = &TerminalObserver{}

func NewTerminalObserver(render Renderer) *TerminalObserver {
	return &TerminalObserver{
		writer: uilive.New(),
		render: render,
	}
}

func (t *TerminalObserver) Start() {
	t.writer.Start()
}

func (t *TerminalObserver) Stop() {
	t.writer.Stop()
}

func (t *TerminalObserver) Observe(iteration int, vf core.ValueFunction, delta float64) {
	fmt.Fprintf(t.writer, "sweep %d, delta %.6g\n", iteration, delta)
	if t.render != nil {
		fmt.Fprint(t.writer.Newline(), t.render(vf))
	}
	t.writer.Flush()
}
