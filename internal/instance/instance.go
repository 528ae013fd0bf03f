// SPDX-License-Identifier: MIT

// Package instance reads ATSP cost matrices from text.
//
// Two layouts are recognised:
//
//   - plain: the city count N followed by N*N integers in row-major order.
//     A negative entry is a forbidden edge.
//   - TSPLIB: "KEY: VALUE" header lines, then EDGE_WEIGHT_SECTION holding a
//     FULL_MATRIX of explicit weights, optionally terminated by EOF. The
//     diagonal is always forbidden whatever sentinel the file uses.
//
// The layout is chosen from the first token: an integer means plain.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/atsp/matrix"
)

var (
	// ErrSyntax marks malformed input: a bad token or a missing section.
	ErrSyntax = errors.New("instance: syntax error")

	// ErrDimension marks a city count that is missing, non-positive or
	// inconsistent with the number of weights.
	ErrDimension = errors.New("instance: bad dimension")

	// ErrUnsupported marks a TSPLIB file whose edge weights are not an
	// explicit full matrix.
	ErrUnsupported = errors.New("instance: unsupported TSPLIB layout")
)

// MaxCities is the largest city count accepted from a file header.
const MaxCities = 1 << 14

// Instance is a parsed problem.
type Instance struct {
	Name    string
	Comment string
	Costs   *matrix.Costs
}

// Size returns the number of cities.
func (in *Instance) Size() int { return in.Costs.Size() }

// Load opens and parses path. A plain file without a NAME gets its base
// file name.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return in, nil
}

// Parse reads one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var first string
	for sc.Scan() {
		if first = strings.TrimSpace(sc.Text()); first != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}
	if first == "" {
		return nil, fmt.Errorf("instance: empty input: %w", ErrSyntax)
	}

	head := strings.Fields(first)[0]
	if _, err := strconv.ParseInt(head, 10, 64); err == nil {
		return parsePlain(first, sc)
	}

	return parseTSPLIB(first, sc)
}

// parsePlain reads "N w11 w12 ... wNN" with arbitrary whitespace.
func parsePlain(first string, sc *bufio.Scanner) (*Instance, error) {
	tokens := newTokenizer(first, sc)

	tok, ok := tokens.next()
	if !ok {
		return nil, fmt.Errorf("instance: plain: %w", ErrDimension)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || n > MaxCities {
		return nil, fmt.Errorf("instance: plain: city count %q: %w", tok, ErrDimension)
	}

	rows, err := readWeights(tokens, n, false)
	if err != nil {
		return nil, fmt.Errorf("instance: plain: %w", err)
	}
	if tok, ok = tokens.next(); ok {
		return nil, fmt.Errorf("instance: plain: trailing token %q after %d weights: %w", tok, n*n, ErrDimension)
	}
	if err = tokens.err(); err != nil {
		return nil, err
	}

	c, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("instance: plain: %w", err)
	}

	return &Instance{Costs: c}, nil
}

// parseTSPLIB reads the specification part up to EDGE_WEIGHT_SECTION and
// then the weights.
func parseTSPLIB(first string, sc *bufio.Scanner) (*Instance, error) {
	var (
		in      Instance
		n       int
		line    = first
		section bool
		err     error
	)
	for {
		if line != "" {
			key, value, hasColon := strings.Cut(line, ":")
			key = strings.ToUpper(strings.TrimSpace(key))
			value = strings.TrimSpace(value)

			if key == "EDGE_WEIGHT_SECTION" {
				section = true
				break
			}
			if key == "EOF" {
				break
			}
			if !hasColon {
				return nil, fmt.Errorf("instance: tsplib: header line %q: %w", line, ErrSyntax)
			}
			switch key {
			case "NAME":
				in.Name = value
			case "COMMENT":
				if in.Comment != "" {
					in.Comment += "\n"
				}
				in.Comment += value
			case "TYPE":
				if t := strings.ToUpper(value); t != "ATSP" && t != "TSP" {
					return nil, fmt.Errorf("instance: tsplib: TYPE %s: %w", value, ErrUnsupported)
				}
			case "DIMENSION":
				if n, err = strconv.Atoi(value); err != nil || n <= 0 || n > MaxCities {
					return nil, fmt.Errorf("instance: tsplib: DIMENSION %q: %w", value, ErrDimension)
				}
			case "EDGE_WEIGHT_TYPE":
				if !strings.EqualFold(value, "EXPLICIT") {
					return nil, fmt.Errorf("instance: tsplib: EDGE_WEIGHT_TYPE %s: %w", value, ErrUnsupported)
				}
			case "EDGE_WEIGHT_FORMAT":
				if !strings.EqualFold(value, "FULL_MATRIX") {
					return nil, fmt.Errorf("instance: tsplib: EDGE_WEIGHT_FORMAT %s: %w", value, ErrUnsupported)
				}
			}
		}
		if !sc.Scan() {
			break
		}
		line = strings.TrimSpace(sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("instance: tsplib: missing DIMENSION: %w", ErrDimension)
	}
	if !section {
		return nil, fmt.Errorf("instance: tsplib: missing EDGE_WEIGHT_SECTION: %w", ErrSyntax)
	}

	tokens := newTokenizer("", sc)
	rows, err := readWeights(tokens, n, true)
	if err != nil {
		return nil, fmt.Errorf("instance: tsplib: %w", err)
	}
	if tok, ok := tokens.next(); ok && !strings.EqualFold(tok, "EOF") {
		return nil, fmt.Errorf("instance: tsplib: trailing token %q after %d weights: %w", tok, n*n, ErrDimension)
	}
	if err = tokens.err(); err != nil {
		return nil, err
	}

	c, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("instance: tsplib: %w", err)
	}
	in.Costs = c

	return &in, nil
}

// readWeights reads n*n integers. With forbidDiagonal the diagonal values
// are consumed and replaced by the forbidden marker. A row is allocated
// only once its first weight has been read.
func readWeights(tokens *tokenizer, n int, forbidDiagonal bool) ([][]int64, error) {
	var (
		rows = make([][]int64, 0, min(n, 64))
		i, j int
	)
	for i = 0; i < n; i++ {
		var row []int64
		for j = 0; j < n; j++ {
			tok, ok := tokens.next()
			if !ok || strings.EqualFold(tok, "EOF") {
				if err := tokens.err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("got %d of %d weights: %w", i*n+j, n*n, ErrDimension)
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("weight (%d,%d) %q: %w", i, j, tok, ErrSyntax)
			}
			if forbidDiagonal && i == j {
				v = -1
			}
			if row == nil {
				row = make([]int64, n)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// tokenizer yields whitespace-separated tokens across scanner lines,
// starting with the tokens of an already-consumed line.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenizer(first string, sc *bufio.Scanner) *tokenizer {
	return &tokenizer{sc: sc, pending: strings.Fields(first)}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		t.pending = strings.Fields(t.sc.Text())
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, true
}

func (t *tokenizer) err() error {
	if err := t.sc.Err(); err != nil {
		return fmt.Errorf("instance: read: %w", err)
	}

	return nil
}
