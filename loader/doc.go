// Package loader reads and writes connectivity matrices stored as
// delimiter-separated text: N lines of N numeric fields, no header.
//
// MRtrix3 tck2connectome writes space-delimited matrices, spreadsheets and
// pandas write comma-separated ones; Read detects the delimiter from the first
// data line (comma, then tab, then whitespace) unless WithDelimiter forces one.
// Lines starting with '#' and blank lines are skipped.
//
// Read rejects malformed input before it ever reaches the metrics engine:
//
//	ErrParse     - a field is not a finite number (row/col in the message)
//	ErrRagged    - rows of different lengths
//	ErrNotSquare - rows × cols with rows ≠ cols (also matches matrix.ErrNonSquare)
//	ErrEmpty     - no data lines at all
package loader
