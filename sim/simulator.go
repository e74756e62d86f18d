// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds the clock, the timing model and the dispatch policy
// for one run. The clock starts idle at cylinder 0, angle 0, time 0.
type Simulator struct {
	Config     Config
	Clock      ClockState
	Model      *TimingModel
	Dispatcher Dispatcher
}

// NewSimulator validates cfg and builds a Simulator ready to Run.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	model := NewTimingModel(cfg.Geometry)
	return &Simulator{
		Config:     cfg,
		Model:      model,
		Dispatcher: NewDispatcher(cfg.Policy, model, cfg.Limit),
	}, nil
}

// Run dispatches requests and reports every completion to sink.
// A Simulator is single-use: running it twice continues from the first run's clock.
func (sim *Simulator) Run(requests []Request, sink Sink) error {
	logrus.Infof("Starting %s simulation over %d requests (limit=%d)", sim.Config.Policy, len(requests), sim.Config.Limit)
	if err := sim.Dispatcher.Dispatch(requests, &sim.Clock, sink); err != nil {
		return fmt.Errorf("%s simulation: %w", sim.Config.Policy, err)
	}
	logrus.Infof("Simulation complete at time %f, head at cylinder %d", sim.Clock.Time, sim.Clock.Cylinder)
	return nil
}
