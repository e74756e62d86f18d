package sim

// TimingModel turns a request and the current clock into a completion.
// It has no state of its own beyond the geometry; the clock it is handed is the
// only thing it mutates.
//
// Costs are computed in milliseconds and converted to input time units
// (seconds) when the clock advances. Products are wrapped in explicit float64
// conversions so no platform fuses them into FMA instructions and results stay
// bit-identical across architectures.
type TimingModel struct {
	Geometry Geometry
}

// NewTimingModel creates a TimingModel over g.
func NewTimingModel(g Geometry) *TimingModel {
	return &TimingModel{Geometry: g}
}

// SeekTime returns the cost in ms of moving the head distance cylinders.
// Any nonzero move pays the full track-to-track base.
func (m *TimingModel) SeekTime(distance int) float64 {
	if distance == 0 {
		return 0
	}
	return float64(m.Geometry.SeekPerCylinderMs*float64(distance)) + m.Geometry.TrackToTrackMs
}

// TransferTime returns the cost in ms of moving size sectors under the head.
func (m *TimingModel) TransferTime(size int) float64 {
	return float64(m.Geometry.TransferPerSectorMs * float64(size))
}

// Service runs req against clock and returns its completion.
// The head always relocates to req's cylinder; distance is measured before the move.
func (m *TimingModel) Service(req Request, clock *ClockState) Completion {
	g := m.Geometry

	if clock.Time < req.ArrivalTime {
		clock.Time = req.ArrivalTime
	}
	distance := req.distanceFrom(clock.Cylinder)
	clock.Cylinder = req.Cylinder

	seek := m.SeekTime(distance)

	// Platter keeps turning while the head seeks.
	clock.Angle = g.reduceAngle(clock.Angle + seek/g.SectorTimeMs)

	sectorDelta := float64(g.TrackSector(req.PSN)) - clock.Angle
	if sectorDelta < 0 {
		sectorDelta = float64(g.SectorsPerTrack) + sectorDelta
	}
	clock.Angle = g.reduceAngle(clock.Angle + sectorDelta + float64(req.Size))
	latency := float64(sectorDelta * g.SectorTimeMs)

	transfer := m.TransferTime(req.Size)

	wait := clock.Time - req.ArrivalTime
	clock.Time = clock.Time + (seek+latency+transfer)/1000.0

	return Completion{
		RequestID:      req.ID,
		ArrivalTime:    req.ArrivalTime,
		CompletionTime: clock.Time,
		WaitTime:       wait,
		EndingPSN:      req.EndingPSN(),
		Cylinder:       req.Cylinder,
		Surface:        req.Surface,
		Angle:          clock.Angle,
		Distance:       distance,
		SeekMs:         seek,
		LatencyMs:      latency,
		TransferMs:     transfer,
	}
}
