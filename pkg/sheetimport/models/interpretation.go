package models

// InterpretedTable is one table after interpretation: the expected column
// names and one record per data row mapping column name to its scalar.
type InterpretedTable struct {
	Columns []string            `json:"columns"`
	Data    []map[string]Scalar `json:"data"`
}

// Interpretation is a single section interpreter's output: zero or more
// interpreted tables and zero or more named scalars.
type Interpretation struct {
	Tables  []InterpretedTable `json:"tables"`
	Scalars map[string]Scalar  `json:"scalars"`
}
