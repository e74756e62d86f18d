package sim

import "fmt"

// Completion records the outcome of servicing one request.
type Completion struct {
	RequestID      int
	ArrivalTime    float64
	CompletionTime float64
	WaitTime       float64 // Time from arrival until service began
	EndingPSN      int
	Cylinder       int
	Surface        int
	Angle          float64 // Rotational position after the transfer

	// Cost breakdown, not part of the output line.
	Distance   int
	SeekMs     float64
	LatencyMs  float64
	TransferMs float64
}

// ServiceTime is the time from arrival to completion.
func (c Completion) ServiceTime() float64 {
	return c.CompletionTime - c.ArrivalTime
}

// Line formats the completion the way the output stream expects it, without a trailing newline.
func (c Completion) Line() string {
	return fmt.Sprintf("%f %f %f %d %d %d %f",
		c.ArrivalTime, c.CompletionTime, c.WaitTime, c.EndingPSN, c.Cylinder, c.Surface, c.Angle)
}
