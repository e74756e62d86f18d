package sim

import "errors"

// onCylinder builds an 8-sector request at track sector 0 of cylinder.
func onCylinder(id int, arrival float64, cylinder int) Request {
	g := DefaultGeometry()
	lbn := cylinder * g.SectorsPerCylinder / g.SectorsPerBlock
	return NewRequest(g, id, arrival, lbn, 8)
}

// collectingSink records completions for assertions.
type collectingSink struct {
	completions []Completion
}

func (s *collectingSink) Record(c Completion) error {
	s.completions = append(s.completions, c)
	return nil
}

func (s *collectingSink) ids() []int {
	ids := make([]int, len(s.completions))
	for i, c := range s.completions {
		ids[i] = c.RequestID
	}
	return ids
}

func (s *collectingSink) cylinders() []int {
	cyls := make([]int, len(s.completions))
	for i, c := range s.completions {
		cyls[i] = c.Cylinder
	}
	return cyls
}

var errSinkFull = errors.New("sink full")

// failingSink accepts n completions and then fails.
type failingSink struct {
	n int
}

func (s *failingSink) Record(Completion) error {
	if s.n == 0 {
		return errSinkFull
	}
	s.n--
	return nil
}
