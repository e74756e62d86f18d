// Package trace provides output sinks and run summaries for disk simulations.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/inference-sim/disk-sim/sim"
)

// Writer writes one fixed-point line per completion:
//
//	arrival completion wait endingPSN cylinder surface angle
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewWriter wraps w. Close flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Create truncates or creates the file at path and writes to it.
func Create(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return &Writer{w: bufio.NewWriter(file), closer: file}, nil
}

// Record writes c as one output line.
func (w *Writer) Record(c sim.Completion) error {
	if _, err := fmt.Fprintln(w.w, c.Line()); err != nil {
		return fmt.Errorf("writing completion: %w", err)
	}
	return nil
}

// Close flushes buffered lines and closes the underlying file if Writer opened it.
func (w *Writer) Close() error {
	flushErr := w.w.Flush()
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("flushing output: %w", flushErr)
	}
	return nil
}
