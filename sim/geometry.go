package sim

import "fmt"

// Geometry holds the fixed disk layout and cost constants used by the timing model.
// All costs are in milliseconds.
type Geometry struct {
	SectorsPerTrack    int `yaml:"sectors_per_track"`
	TracksPerCylinder  int `yaml:"tracks_per_cylinder"`
	SectorsPerCylinder int `yaml:"sectors_per_cylinder"`
	SectorsPerBlock    int `yaml:"sectors_per_block"` // logical block size / physical sector size

	SeekPerCylinderMs   float64 `yaml:"seek_per_cylinder_ms"`
	TrackToTrackMs      float64 `yaml:"track_to_track_ms"`
	SectorTimeMs        float64 `yaml:"sector_time_ms"`
	TransferPerSectorMs float64 `yaml:"transfer_per_sector_ms"`
}

// Default geometry constants.
const (
	DefaultSectorsPerTrack     = 200
	DefaultTracksPerCylinder   = 8
	DefaultSectorsPerCylinder  = 1600
	DefaultSectorsPerBlock     = 8 // 4096-byte blocks over 512-byte sectors
	DefaultSeekPerCylinderMs   = 0.000028
	DefaultTrackToTrackMs      = 2.0
	DefaultSectorTimeMs        = 0.03
	DefaultTransferPerSectorMs = 0.003814697265625
)

// DefaultGeometry returns the geometry every run uses unless overridden.
func DefaultGeometry() Geometry {
	return Geometry{
		SectorsPerTrack:     DefaultSectorsPerTrack,
		TracksPerCylinder:   DefaultTracksPerCylinder,
		SectorsPerCylinder:  DefaultSectorsPerCylinder,
		SectorsPerBlock:     DefaultSectorsPerBlock,
		SeekPerCylinderMs:   DefaultSeekPerCylinderMs,
		TrackToTrackMs:      DefaultTrackToTrackMs,
		SectorTimeMs:        DefaultSectorTimeMs,
		TransferPerSectorMs: DefaultTransferPerSectorMs,
	}
}

// Validate checks that sizes are positive and mutually consistent.
func (g Geometry) Validate() error {
	if g.SectorsPerTrack <= 0 {
		return fmt.Errorf("sectors_per_track must be positive, got %d", g.SectorsPerTrack)
	}
	if g.TracksPerCylinder <= 0 {
		return fmt.Errorf("tracks_per_cylinder must be positive, got %d", g.TracksPerCylinder)
	}
	if g.SectorsPerCylinder != g.SectorsPerTrack*g.TracksPerCylinder {
		return fmt.Errorf("sectors_per_cylinder (%d) must equal sectors_per_track*tracks_per_cylinder (%d)",
			g.SectorsPerCylinder, g.SectorsPerTrack*g.TracksPerCylinder)
	}
	if g.SectorsPerBlock <= 0 {
		return fmt.Errorf("sectors_per_block must be positive, got %d", g.SectorsPerBlock)
	}
	if g.SeekPerCylinderMs < 0 || g.TrackToTrackMs < 0 {
		return fmt.Errorf("seek costs must be non-negative, got %v ms/cylinder and %v ms base",
			g.SeekPerCylinderMs, g.TrackToTrackMs)
	}
	if g.SectorTimeMs <= 0 {
		return fmt.Errorf("sector_time_ms must be positive, got %v", g.SectorTimeMs)
	}
	if g.TransferPerSectorMs < 0 {
		return fmt.Errorf("transfer_per_sector_ms must be non-negative, got %v", g.TransferPerSectorMs)
	}
	return nil
}

// PhysicalSector maps a logical block number to its first physical sector.
func (g Geometry) PhysicalSector(lbn int) int {
	return lbn * g.SectorsPerBlock
}

// Cylinder returns the cylinder holding psn.
func (g Geometry) Cylinder(psn int) int {
	return psn / g.SectorsPerCylinder
}

// Surface returns the track (head) within its cylinder holding psn.
func (g Geometry) Surface(psn int) int {
	return (psn % g.SectorsPerCylinder) / g.SectorsPerTrack
}

// TrackSector returns the rotational position of psn within its track.
func (g Geometry) TrackSector(psn int) int {
	return (psn % g.SectorsPerCylinder) % g.SectorsPerTrack
}

// reduceAngle folds a rotational position back by at most one of two tracks or one track.
// It is not a true modulo: a value of 2.5 tracks comes back as 0.5 tracks, but 3.5 tracks
// comes back as 1.5 tracks. Simulated results depend on this exact reduction.
func (g Geometry) reduceAngle(angle float64) float64 {
	track := float64(g.SectorsPerTrack)
	if angle >= 2*track {
		return angle - 2*track
	} else if angle >= track {
		return angle - track
	}
	return angle
}
