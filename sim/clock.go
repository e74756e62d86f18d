package sim

import "fmt"

// ClockState is the mutable state of one simulation run: where the head is,
// where the platter is, and what time it is. A run owns exactly one ClockState
// and threads it through every dispatch.
type ClockState struct {
	Cylinder int     // Current head cylinder
	Angle    float64 // Current rotational position, in sectors
	Time     float64 // Current simulated time, in input units
}

func (c ClockState) String() string {
	return fmt.Sprintf("Clock: (Time: %f, Cylinder: %d, Angle: %f)", c.Time, c.Cylinder, c.Angle)
}
