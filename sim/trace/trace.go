package trace

import (
	"github.com/inference-sim/disk-sim/sim"
)

// Recorder keeps every completion of a run in service order.
type Recorder struct {
	Completions []sim.Completion
}

// NewRecorder creates a Recorder ready for recording.
func NewRecorder() *Recorder {
	return &Recorder{Completions: make([]sim.Completion, 0)}
}

// Record appends a completion. It never fails.
func (r *Recorder) Record(c sim.Completion) error {
	r.Completions = append(r.Completions, c)
	return nil
}

// MultiSink fans each completion out to every sink in order, stopping at the first error.
type MultiSink []sim.Sink

func (m MultiSink) Record(c sim.Completion) error {
	for _, s := range m {
		if err := s.Record(c); err != nil {
			return err
		}
	}
	return nil
}
