// Package workload reads disk request traces into sim.Request values.
//
// A trace is newline-delimited, one request per line:
//
//	arrivalTime logicalBlockNumber requestSize
//
// Parsing is lenient: a field that is not a clean number is coerced the way C's
// atof/atoi would (longest numeric prefix, else zero). Every such coercion is
// reported as a ParseWarning so callers can tell real zeros from bad input.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/inference-sim/disk-sim/sim"
)

// Field names used in warnings.
const (
	FieldArrivalTime = "arrival_time"
	FieldLBN         = "lbn"
	FieldSize        = "size"
)

var fieldNames = [...]string{FieldArrivalTime, FieldLBN, FieldSize}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

const maxLineBytes = 1 << 20

// ParseWarning describes an input line that did not parse cleanly.
type ParseWarning struct {
	Line   int    // 1-based line number
	Field  string // field name, empty for whole-line problems
	Token  string // raw token, empty when the field was missing
	Reason string
}

func (w ParseWarning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return fmt.Sprintf("line %d: %s %q: %s", w.Line, w.Field, w.Token, w.Reason)
}

// ParseRequests reads every request from r, deriving geometry with g.
// Blank lines are skipped. The returned error is only for read failures;
// malformed content is reported through the warnings.
func ParseRequests(r io.Reader, g sim.Geometry) ([]sim.Request, []ParseWarning, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var requests []sim.Request
	var warnings []ParseWarning
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			warnings = append(warnings, ParseWarning{Line: line, Reason: "blank line skipped"})
			continue
		}
		if len(fields) > len(fieldNames) {
			warnings = append(warnings, ParseWarning{
				Line:   line,
				Reason: fmt.Sprintf("%d fields, extra fields ignored", len(fields)),
			})
		}

		var values [3]string
		for i := range fieldNames {
			if i < len(fields) {
				values[i] = fields[i]
			} else {
				warnings = append(warnings, ParseWarning{Line: line, Field: fieldNames[i], Reason: "missing, using 0"})
			}
		}

		arrival, ok := parseFloat(values[0])
		if !ok && values[0] != "" {
			warnings = append(warnings, coerced(line, FieldArrivalTime, values[0], arrival))
		}
		lbn, ok := parseInt(values[1])
		if !ok && values[1] != "" {
			warnings = append(warnings, coerced(line, FieldLBN, values[1], lbn))
		}
		size, ok := parseInt(values[2])
		if !ok && values[2] != "" {
			warnings = append(warnings, coerced(line, FieldSize, values[2], size))
		}

		requests = append(requests, sim.NewRequest(g, line, arrival, lbn, size))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading requests at line %d: %w", line+1, err)
	}
	return requests, warnings, nil
}

// LoadRequests opens path and parses it with ParseRequests.
func LoadRequests(path string, g sim.Geometry) ([]sim.Request, []ParseWarning, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ParseRequests(file, g)
}

func coerced[T int | float64](line int, field, token string, value T) ParseWarning {
	return ParseWarning{Line: line, Field: field, Token: token, Reason: fmt.Sprintf("not a number, using %v", value)}
}

// parseInt mimics atoi. ok is false whenever the token was not a clean integer.
func parseInt(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(tok); err == nil {
		return v, true
	}
	prefix := intPrefix.FindString(tok)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return v, false
}

// parseFloat mimics atof. ok is false whenever the token was not a clean number.
func parseFloat(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return v, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return v, false
	}
	prefix := floatPrefix.FindString(tok)
	if prefix == "" {
		return 0, false
	}
	v, err = strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, false
}
