package trace

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disk-sim/sim"
)

var sample = sim.Completion{
	RequestID:      1,
	ArrivalTime:    1,
	CompletionTime: 1.002910517578125,
	EndingPSN:      1712,
	Cylinder:       1,
	Angle:          112,
}

func TestRecorder_Record_AppendsInOrder(t *testing.T) {
	// GIVEN an empty recorder
	rec := NewRecorder()

	// WHEN two completions are recorded
	require.NoError(t, rec.Record(sim.Completion{RequestID: 2}))
	require.NoError(t, rec.Record(sim.Completion{RequestID: 1}))

	// THEN they are kept in service order
	require.Len(t, rec.Completions, 2)
	assert.Equal(t, 2, rec.Completions[0].RequestID)
	assert.Equal(t, 1, rec.Completions[1].RequestID)
}

func TestWriter_WritesFixedPointLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Record(sample))
	require.NoError(t, w.Record(sim.Completion{EndingPSN: 8, Angle: 8, CompletionTime: 0.000030517578125}))

	// Nothing reaches the underlying writer until Close flushes
	assert.Equal(t, 0, buf.Len())
	require.NoError(t, w.Close())
	assert.Equal(t,
		"1.000000 1.002911 0.000000 1712 1 0 112.000000\n"+
			"0.000000 0.000031 0.000000 8 0 0 8.000000\n",
		buf.String())
}

func TestCreate_TruncatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0644))

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Record(sample))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.000000 1.002911 0.000000 1712 1 0 112.000000\n", string(data))
}

func TestCreate_UnwritablePath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing-dir", "out.txt"))
	assert.Error(t, err)
}

type errSink struct{ err error }

func (s errSink) Record(sim.Completion) error { return s.err }

func TestMultiSink_FansOutAndStopsOnError(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	require.NoError(t, MultiSink{a, b}.Record(sample))
	assert.Len(t, a.Completions, 1)
	assert.Len(t, b.Completions, 1)

	boom := errors.New("boom")
	c := NewRecorder()
	err := MultiSink{errSink{boom}, c}.Record(sample)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.Completions)
}
