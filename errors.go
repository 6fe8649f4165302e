package revue

import "fmt"

// ParseError reports a single token that could not be interpreted as an
// amount or a date. It is recovered locally by the loader as a skipped-row
// diagnostic, never propagated for a whole file.
type ParseError struct {
	Kind  string // "amount" or "date"
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Token)
}

// SchemaError reports a required canonical column that no header of the file
// satisfies. It is fatal for that file's load: the loader never guesses a
// missing column.
type SchemaError struct {
	Field  Field    // the canonical field that could not be resolved
	Header []string // the header row actually seen, for the user to fix the export
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column %q in header %v", e.Field, e.Header)
}

// LoadError reports a file that yielded zero usable rows. Partial failure is
// non-fatal (skipped rows become diagnostics); a file where every row failed
// is an error.
type LoadError struct {
	Path    string
	Rows    int // data rows seen
	Skipped int // rows rejected with a diagnostic
}

func (e *LoadError) Error() string {
	if e.Rows == 0 {
		return fmt.Sprintf("%s: no data rows", e.Path)
	}
	return fmt.Sprintf("%s: no usable rows (%d rows, %d skipped)", e.Path, e.Rows, e.Skipped)
}
