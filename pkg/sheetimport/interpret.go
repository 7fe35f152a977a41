// Package sheetimport turns raw scanned data-sheet content into structured
// session records.
package sheetimport

import (
	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
	"github.com/slpdata/sheetimport/pkg/sheetimport/section"
)

// Form-data labels the composite interpreter requires in every sheet.
const (
	FieldStudentKey = "Student Key"
	FieldDate       = "Date"
	FieldTimeIn     = "Time IN"
	FieldTimeOut    = "Time OUT"
	FieldGoal       = "Goal"
	FieldMeasure    = "Measure"
)

// RequiredFields lists the form-data keys every sheet must carry, in the
// order they are checked.
var RequiredFields = []string{FieldStudentKey, FieldDate, FieldTimeIn, FieldTimeOut, FieldGoal, FieldMeasure}

// DataSheetInterpreter interprets whole data sheets: it extracts the
// session metadata and fans the raw content out to its configured section
// interpreters.
type DataSheetInterpreter struct {
	sections []section.Interpreter
	opts     Options
}

// NewDataSheetInterpreter builds a composite interpreter over an ordered
// list of section interpreters. The list is shared, not copied; its order
// only affects output ordering and scalar merge precedence.
func NewDataSheetInterpreter(sections []section.Interpreter, opts Options) *DataSheetInterpreter {
	return &DataSheetInterpreter{sections: sections, opts: opts}
}

// Interpret gives meaning to one sheet's raw content. It reads the required
// metadata fields, runs every section interpreter over the same content in
// list order, and merges their results: tables accumulate, scalars merge
// last-write-wins. The first failure aborts the call and no partial sheet
// is returned.
func (d *DataSheetInterpreter) Interpret(raw models.RawSheetContent) (*models.DataSheet, error) {
	for _, key := range RequiredFields {
		if _, ok := raw.FormData[key]; !ok {
			return nil, &MissingRequiredFieldError{Key: key}
		}
	}

	sheet := models.NewDataSheet(
		raw.FormData[FieldStudentKey],
		raw.FormData[FieldGoal],
		raw.FormData[FieldDate],
		raw.FormData[FieldTimeIn],
		raw.FormData[FieldTimeOut],
		raw.FormData[FieldMeasure],
	)

	for _, s := range d.sections {
		interp, err := s.Interpret(raw)
		if err != nil {
			return nil, err
		}
		for _, table := range interp.Tables {
			sheet.RegisterTable(table)
		}
		for key, scalar := range interp.Scalars {
			sheet.RegisterScalar(key, scalar)
		}
	}

	if d.opts.ValidateChoices {
		if err := validateChoices(sheet); err != nil {
			return nil, err
		}
	}

	return sheet, nil
}

func validateChoices(sheet *models.DataSheet) error {
	for _, table := range sheet.Tables {
		for _, row := range table.Data {
			for _, scalar := range row {
				if err := scalar.Validate(); err != nil {
					return err
				}
			}
		}
	}
	for _, scalar := range sheet.Scalars {
		if err := scalar.Validate(); err != nil {
			return err
		}
	}
	return nil
}
