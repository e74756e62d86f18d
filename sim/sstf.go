package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SSTFDispatcher services the pending request closest to the head first.
//
// While input remains, each incoming request r is handled as follows:
//   - if the disk is still busy past r's arrival, r is deferred into the pending queue;
//   - otherwise, if requests are pending, the best one is serviced and r is then deferred;
//   - otherwise r is serviced directly.
//
// Once input is exhausted (or the admission cap is reached) the pending queue is drained.
type SSTFDispatcher struct {
	Model *TimingModel
	Limit int
}

func (d *SSTFDispatcher) Dispatch(requests []Request, clock *ClockState, sink Sink) error {
	pending := &PendingQueue{}

	for _, r := range admitted(requests, d.Limit) {
		if clock.Time > r.ArrivalTime {
			logrus.Tracef("sstf: deferring request %d, disk busy until %f", r.ID, clock.Time)
			pending.Enqueue(r)
			continue
		}
		if pending.Len() > 0 {
			if err := d.serviceBest(pending, clock, sink); err != nil {
				return err
			}
			// r is deferred even though the disk was idle relative to it.
			pending.Enqueue(r)
			continue
		}
		logrus.Tracef("sstf: servicing request %d directly", r.ID)
		if err := d.record(d.Model.Service(r, clock), sink); err != nil {
			return err
		}
	}

	logrus.Debugf("sstf: input exhausted, draining %d pending requests", pending.Len())
	for pending.Len() > 0 {
		if err := d.serviceBest(pending, clock, sink); err != nil {
			return err
		}
	}
	return nil
}

func (d *SSTFDispatcher) serviceBest(pending *PendingQueue, clock *ClockState, sink Sink) error {
	next := pending.RemoveAt(SelectBest(pending, *clock))
	logrus.Tracef("sstf: selected request %d (cylinder %d, head at %d)", next.ID, next.Cylinder, clock.Cylinder)
	return d.record(d.Model.Service(next, clock), sink)
}

func (d *SSTFDispatcher) record(c Completion, sink Sink) error {
	if err := sink.Record(c); err != nil {
		return fmt.Errorf("recording request %d: %w", c.RequestID, err)
	}
	return nil
}

// SelectBest returns the index of the pending request to service next, or -1 if
// the queue is empty.
//
// The oldest entry is the starting candidate whether or not it has arrived. A later
// entry replaces the candidate only if it is strictly closer to the head and has
// arrived by clock.Time. Distances are measured against clock.Cylinder on every call.
func SelectBest(pending *PendingQueue, clock ClockState) int {
	items := pending.Items()
	if len(items) == 0 {
		return -1
	}
	best := 0
	bestDistance := items[0].distanceFrom(clock.Cylinder)
	for i := 1; i < len(items); i++ {
		d := items[i].distanceFrom(clock.Cylinder)
		if d < bestDistance && items[i].ArrivalTime <= clock.Time {
			best, bestDistance = i, d
		}
	}
	return best
}
