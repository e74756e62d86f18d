// Package testutil provides shared test infrastructure for the disk simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and cmd/ test packages.
package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden.yaml.
type GoldenDataset struct {
	Cases []GoldenCase `yaml:"cases"`
}

// GoldenCase is one input trace, the policy to run it under, and the exact expected output.
type GoldenCase struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy"`
	Limit  int    `yaml:"limit"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// TestdataPath resolves name inside the repo root testdata/ directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func TestdataPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(TestdataPath(t, "golden.yaml"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("Golden dataset has no cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
