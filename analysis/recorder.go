package analysis

import (
	"github.com/zeu5/finite-mdp/core"
	"github.com/zeu5/finite-mdp/solver"
	"github.com/zeu5/finite-mdp/util"
)

// SweepRecord is one sweep's snapshot of the solve.
type SweepRecord struct {
	Iteration int                `json:"iteration"`
	Delta     float64            `json:"delta"`
	Values    map[string]float64 `json:"values"`
}

// Recorder keeps a copy of every sweep's value function so a solve can be
// inspected or saved after the fact.
type Recorder struct {
	records []*SweepRecord
}

var _ solver.Observer = &Recorder{}

func NewRecorder() *Recorder {
	return &Recorder{
		records: make([]*SweepRecord, 0),
	}
}

func (r *Recorder) Observe(iteration int, vf core.ValueFunction, delta float64) {
	r.records = append(r.records, &SweepRecord{
		Iteration: iteration,
		Delta:     delta,
		Values:    vf.Copy(),
	})
}

func (r *Recorder) Records() []*SweepRecord {
	return r.records
}

// Save writes the recorded sweeps as JSON.
func (r *Recorder) Save(path string) error {
	return util.SaveJson(path, r.records)
}
