package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeRequests = "0.0 2013 8\n0.0 423 8\n5.0 213 8\n"

const threeRequestsOutput = "0.000000 0.003151 0.000000 16112 10 0 112.000000\n" +
	"0.000000 0.005341 0.003151 3392 2 0 192.000000\n" +
	"5.000000 5.003391 0.000000 1712 1 0 112.000000\n"

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunSimulation_WritesOutputFile(t *testing.T) {
	for _, policy := range []string{"fcfs", "sstf"} {
		t.Run(policy, func(t *testing.T) {
			// GIVEN a three-request trace
			in := writeInput(t, threeRequests)
			out := filepath.Join(t.TempDir(), "out.txt")

			// WHEN the run command's body executes
			var stdout bytes.Buffer
			err := runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: policy}, &stdout)

			// THEN the output file holds one fixed-point line per request and stdout is untouched
			require.NoError(t, err)
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, threeRequestsOutput, string(data))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunSimulation_Limit(t *testing.T) {
	in := writeInput(t, threeRequests)
	out := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: "sstf", Limit: 1}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0.000000 0.003151 0.000000 16112 10 0 112.000000\n", string(data))
}

func TestRunSimulation_Summary(t *testing.T) {
	in := writeInput(t, threeRequests)
	out := filepath.Join(t.TempDir(), "out.txt")
	var stdout bytes.Buffer

	require.NoError(t, runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: "sstf", Summary: true}, &stdout))

	assert.Contains(t, stdout.String(), "Simulation Summary")
	assert.Contains(t, stdout.String(), "sstf")
	assert.Contains(t, stdout.String(), "5.003391") // makespan
}

func TestRunSimulation_UnreadableInput_CreatesOutputThenFails(t *testing.T) {
	// GIVEN an input path that does not exist
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	// WHEN the run executes
	err := runSimulation(runOptions{InputPath: filepath.Join(dir, "missing.txt"), OutputPath: out, Policy: "fcfs"}, &bytes.Buffer{})

	// THEN it fails naming the input, and the output was already opened (empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error in input")
	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Empty(t, data)
}

func TestRunSimulation_UnwritableOutput(t *testing.T) {
	in := writeInput(t, threeRequests)
	out := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")

	err := runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: "fcfs"}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error in output")
}

func TestRunSimulation_UnknownPolicy(t *testing.T) {
	err := runSimulation(runOptions{InputPath: "in", OutputPath: "out", Policy: "scan"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown policy "scan"`)
}

func TestRunSimulation_MissingPaths(t *testing.T) {
	err := runSimulation(runOptions{Policy: "fcfs"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "required")
}

func TestRunSimulation_ParseWarnings_LenientByDefault(t *testing.T) {
	// GIVEN a trace with a non-numeric LBN
	in := writeInput(t, "0.0 abc 8\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	// WHEN run without --strict
	require.NoError(t, runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: "fcfs"}, &bytes.Buffer{}))

	// THEN the field is coerced to zero exactly as before
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0.000000 0.000031 0.000000 8 0 0 8.000000\n", string(data))
}

func TestRunSimulation_ParseWarnings_StrictFails(t *testing.T) {
	in := writeInput(t, "0.0 abc 8\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	err := runSimulation(runOptions{InputPath: in, OutputPath: out, Policy: "fcfs", Strict: true}, &bytes.Buffer{})

	assert.ErrorContains(t, err, "strict")
}

func TestRunSimulation_RepeatedRunsIdentical(t *testing.T) {
	in := filepath.Join("..", "examples", "trace.txt")
	dir := t.TempDir()
	for _, policy := range []string{"fcfs", "sstf"} {
		first := filepath.Join(dir, policy+"-1.txt")
		second := filepath.Join(dir, policy+"-2.txt")
		require.NoError(t, runSimulation(runOptions{InputPath: in, OutputPath: first, Policy: policy}, &bytes.Buffer{}))
		require.NoError(t, runSimulation(runOptions{InputPath: in, OutputPath: second, Policy: policy}, &bytes.Buffer{}))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b, policy)
		assert.Equal(t, 10, bytes.Count(a, []byte("\n")), policy)
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["compare"])

	f := runCmd.Flags().Lookup("policy")
	require.NotNil(t, f)
	assert.Equal(t, "fcfs", f.DefValue)
}
