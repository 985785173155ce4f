// SPDX-License-Identifier: MIT
// Package: loader
//
// loader.go — Load/Read/Write for delimiter-separated matrices.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	commentPrefix = "#"
	// Whitespace means "one or more spaces or tabs".
	Whitespace rune = ' '
	Comma      rune = ','
	Tab        rune = '\t'

	// maxLineBytes bounds one text line; 1000-region float matrices fit easily.
	maxLineBytes = 16 << 20
)

// Option configures Read.
type Option func(*options)

type options struct {
	delim rune // 0 = auto-detect
}

// WithDelimiter forces the field delimiter (Comma, Tab, Whitespace or any
// other printable rune). Panics on newline, carriage return or '#'.
func WithDelimiter(d rune) Option {
	if !validDelimiter(d) {
		panic(fmt.Sprintf("loader: WithDelimiter(%q): invalid delimiter", d))
	}
	return func(o *options) {
		o.delim = d
	}
}

// ParseDelimiter maps a configuration string to a delimiter rune:
// "" or "auto" → 0 (detect), "comma"/",", "tab"/"\t", "space"/"whitespace"/" ".
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return 0, nil
	case "comma", ",":
		return Comma, nil
	case "tab", "\t", `\t`:
		return Tab, nil
	case "space", "whitespace", " ":
		return Whitespace, nil
	}
	if r := []rune(s); len(r) == 1 && validDelimiter(r[0]) {
		return r[0], nil
	}

	return 0, fmt.Errorf("loader: unknown delimiter %q", s)
}

func validDelimiter(d rune) bool {
	return d != 0 && d != '\n' && d != '\r' && d != '#'
}

// Load opens path and reads one matrix from it.
func Load(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Read parses one square matrix from r.
func Read(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]float64
	lineNo := 0
	delim := o.delim
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if delim == 0 {
			delim = detect(line)
		}
		fields := split(line, delim)
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", lineNo, len(fields), len(rows[0]), ErrRagged)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d, column %d: %q: %w", lineNo, j+1, f, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("%d rows × %d columns: %w", len(rows), len(rows[0]), ErrNotSquare)
	}

	return matrix.FromRows(rows)
}

// detect picks comma, then tab, then whitespace.
func detect(line string) rune {
	switch {
	case strings.ContainsRune(line, Comma):
		return Comma
	case strings.ContainsRune(line, Tab):
		return Tab
	default:
		return Whitespace
	}
}

// split breaks line into fields. One trailing delimiter, as spreadsheet
// exports often write, does not start an extra field.
func split(line string, delim rune) []string {
	if delim == Whitespace {
		return strings.Fields(line)
	}
	sep := string(delim)

	return strings.Split(strings.TrimSuffix(line, sep), sep)
}

// Write emits m as text, one row per line, fields separated by delim
// (0 means Whitespace). Values use the shortest exact decimal form.
func Write(w io.Writer, m matrix.Matrix, delim rune) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}
	if delim == 0 {
		delim = Whitespace
	}
	bw := bufio.NewWriter(w)
	sep := string(delim)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("loader: write: %w", err)
			}
			if j > 0 {
				bw.WriteString(sep)
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Save writes m to path, creating or truncating it.
func Save(path string, m matrix.Matrix, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err = Write(f, m, delim); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
