package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/disk-sim/sim"
)

// geometryFile is the geometry override YAML structure.
// Nil fields mean "not set in YAML" and keep the built-in constant.
// Unknown keys are rejected so typos cannot silently fall back to defaults.
type geometryFile struct {
	SectorsPerTrack     *int     `yaml:"sectors_per_track"`
	TracksPerCylinder   *int     `yaml:"tracks_per_cylinder"`
	SectorsPerCylinder  *int     `yaml:"sectors_per_cylinder"`
	SectorsPerBlock     *int     `yaml:"sectors_per_block"`
	SeekPerCylinderMs   *float64 `yaml:"seek_per_cylinder_ms"`
	TrackToTrackMs      *float64 `yaml:"track_to_track_ms"`
	SectorTimeMs        *float64 `yaml:"sector_time_ms"`
	TransferPerSectorMs *float64 `yaml:"transfer_per_sector_ms"`
}

// loadGeometry reads a geometry override file and applies it over sim.DefaultGeometry().
func loadGeometry(path string) (sim.Geometry, error) {
	g := sim.DefaultGeometry()

	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("reading geometry file: %w", err)
	}

	// Parse YAML with strict field checking
	var f geometryFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return g, fmt.Errorf("parsing geometry file %s: %w", path, err)
	}

	setInt(&g.SectorsPerTrack, f.SectorsPerTrack)
	setInt(&g.TracksPerCylinder, f.TracksPerCylinder)
	setInt(&g.SectorsPerBlock, f.SectorsPerBlock)
	if f.SectorsPerCylinder != nil {
		g.SectorsPerCylinder = *f.SectorsPerCylinder
	} else {
		g.SectorsPerCylinder = g.SectorsPerTrack * g.TracksPerCylinder
	}
	setFloat(&g.SeekPerCylinderMs, f.SeekPerCylinderMs)
	setFloat(&g.TrackToTrackMs, f.TrackToTrackMs)
	setFloat(&g.SectorTimeMs, f.SectorTimeMs)
	setFloat(&g.TransferPerSectorMs, f.TransferPerSectorMs)

	if err := g.Validate(); err != nil {
		return g, fmt.Errorf("geometry file %s: %w", path, err)
	}
	logrus.Debugf("Loaded geometry from %s: %+v", path, g)
	return g, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
