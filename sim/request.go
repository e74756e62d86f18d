// Defines the Request struct that models one disk access in the simulation.
// Tracks arrival time, logical address, transfer size and the physical location derived from them.

package sim

import (
	"fmt"
)

// Request models a single disk access request.
// Derived geometry fields are filled once by NewRequest and never change.
// Head-to-target distance is not stored; it is recomputed against the head on every scan.
type Request struct {
	ID int // 1-based input line number, for diagnostics only

	ArrivalTime float64 // Simulated time the request arrives, in input units
	LBN         int     // Logical block number
	Size        int     // Transfer size in sectors

	PSN          int // Physical sector number of the first sector
	Cylinder     int // Cylinder holding PSN
	Surface      int // Track within the cylinder holding PSN
	SectorOffset int // Track sector of PSN plus Size; informational only
}

// NewRequest builds a Request and derives its physical location under g.
func NewRequest(g Geometry, id int, arrivalTime float64, lbn int, size int) Request {
	psn := g.PhysicalSector(lbn)
	return Request{
		ID:           id,
		ArrivalTime:  arrivalTime,
		LBN:          lbn,
		Size:         size,
		PSN:          psn,
		Cylinder:     g.Cylinder(psn),
		Surface:      g.Surface(psn),
		SectorOffset: g.TrackSector(psn) + size,
	}
}

// EndingPSN is the sector just past the transfer.
func (req Request) EndingPSN() int {
	return req.PSN + req.Size
}

// distanceFrom returns the absolute cylinder distance between the request and a head position.
func (req Request) distanceFrom(cylinder int) int {
	d := req.Cylinder - cylinder
	if d < 0 {
		return -d
	}
	return d
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %f, LBN: %d, Size: %d, Cylinder: %d)",
		req.ID, req.ArrivalTime, req.LBN, req.Size, req.Cylinder)
}
