package section

import "fmt"

// MissingColumnError indicates a configured column absent from a raw
// table's header row.
type MissingColumnError struct {
	Column       string
	FoundHeaders []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("expected column %q in data sheet but could not find it, got columns: %v", e.Column, e.FoundHeaders)
}

// MalformedRowError indicates a data row too short to hold a configured
// column. Table is the position of the raw table in the input, Row the
// row's position in its grid (the header row is 0).
type MalformedRowError struct {
	Table int
	Row   int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("table %d row %d is shorter than the configured columns require", e.Table, e.Row)
}
