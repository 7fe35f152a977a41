package models

import "github.com/tiendc/go-deepcopy"

// DataSheet is the structured record built from one scanned session sheet.
// It is populated during a single interpretation pass and read-only
// afterwards.
type DataSheet struct {
	StudentKey  string `json:"student_key"`
	StudentGoal string `json:"student_goal"`
	Date        string `json:"date"`
	TimeIn      string `json:"time_in"`
	TimeOut     string `json:"time_out"`
	Measure     string `json:"measure"`

	Tables  []InterpretedTable `json:"tables"`
	Scalars map[string]Scalar  `json:"scalars"`
}

// NewDataSheet creates an empty data sheet carrying the required session
// metadata. Containers are freshly allocated per sheet.
func NewDataSheet(studentKey, studentGoal, date, timeIn, timeOut, measure string) *DataSheet {
	return &DataSheet{
		StudentKey:  studentKey,
		StudentGoal: studentGoal,
		Date:        date,
		TimeIn:      timeIn,
		TimeOut:     timeOut,
		Measure:     measure,
		Tables:      []InterpretedTable{},
		Scalars:     map[string]Scalar{},
	}
}

// RegisterTable appends an interpreted table. Tables accumulate in
// registration order and are never deduplicated.
func (d *DataSheet) RegisterTable(table InterpretedTable) {
	d.Tables = append(d.Tables, table)
}

// RegisterScalar stores a named scalar, overwriting any earlier value
// registered under the same key.
func (d *DataSheet) RegisterScalar(key string, value Scalar) {
	d.Scalars[key] = value
}

// Clone returns a deep copy of the sheet so it can be handed to reporting
// code without aliasing the interpreter's accumulator.
func (d *DataSheet) Clone() (*DataSheet, error) {
	out := &DataSheet{}
	if err := deepcopy.Copy(out, d); err != nil {
		return nil, err
	}
	return out, nil
}
