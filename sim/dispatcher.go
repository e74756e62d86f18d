package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sink receives completions in the order requests are serviced.
type Sink interface {
	Record(c Completion) error
}

// Dispatcher decides the order in which requests reach the timing model.
// Dispatch consumes requests in input order, mutates clock, and reports each
// completion to sink. It stops at the first sink error.
type Dispatcher interface {
	Dispatch(requests []Request, clock *ClockState, sink Sink) error
}

// Policy names.
const (
	PolicyFCFS = "fcfs"
	PolicySSTF = "sstf"
)

// ValidPolicies is the set of recognized dispatch policy names.
var ValidPolicies = map[string]bool{PolicyFCFS: true, PolicySSTF: true}

// IsValidPolicy returns true if name is a recognized dispatch policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// NewDispatcher creates a Dispatcher by name.
// Valid names: "fcfs", "sstf". limit caps the number of input records admitted;
// zero or negative means no cap.
// Panics on unrecognized names.
func NewDispatcher(name string, model *TimingModel, limit int) Dispatcher {
	if model == nil {
		panic("NewDispatcher: model must not be nil")
	}
	switch name {
	case PolicyFCFS:
		return &FCFSDispatcher{Model: model, Limit: limit}
	case PolicySSTF:
		return &SSTFDispatcher{Model: model, Limit: limit}
	default:
		panic(fmt.Sprintf("unknown dispatch policy %q", name))
	}
}

// admitted truncates requests to the admission cap.
func admitted(requests []Request, limit int) []Request {
	if limit > 0 && limit < len(requests) {
		return requests[:limit]
	}
	return requests
}

// FCFSDispatcher services requests strictly in input order.
type FCFSDispatcher struct {
	Model *TimingModel
	Limit int
}

func (d *FCFSDispatcher) Dispatch(requests []Request, clock *ClockState, sink Sink) error {
	for _, r := range admitted(requests, d.Limit) {
		c := d.Model.Service(r, clock)
		logrus.Tracef("fcfs: serviced request %d at %f", r.ID, c.CompletionTime)
		if err := sink.Record(c); err != nil {
			return fmt.Errorf("recording request %d: %w", r.ID, err)
		}
	}
	return nil
}
