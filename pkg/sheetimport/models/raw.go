package models

// RawTable is an unprocessed grid of cell strings from table detection.
// Row 0 is the header row. Rows may be ragged; a missing cell reads as the
// empty string.
type RawTable [][]string

// Cell returns the cell at (row, col) and whether the row actually extends
// that far.
func (t RawTable) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t) {
		return "", false
	}
	if col < 0 || col >= len(t[row]) {
		return "", false
	}
	return t[row][col], true
}

// RawSheetContent is the input handed over by the form/table extraction
// collaborator: labeled form fields plus the detected table grids.
// Interpreters treat it as read-only.
type RawSheetContent struct {
	FormData map[string]string `json:"form_data"`
	Tables   []RawTable        `json:"tables"`
}
