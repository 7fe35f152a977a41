package section

import (
	"fmt"
	"maps"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// SimpleFormInterpreter handles sheets whose data lives in predictable form
// fields ("Total Repetitions", "Times w/Prompting", ...). It picks the
// configured fields out of the form data; fields missing from the sheet are
// silently skipped, and raw string values pass through without conversion
// to the declared type.
type SimpleFormInterpreter struct {
	fields map[string]models.ScalarType
}

// NewSimpleFormInterpreter configures a form interpreter over the expected
// field names and their declared types.
func NewSimpleFormInterpreter(fields map[string]models.ScalarType) (*SimpleFormInterpreter, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("simple form interpreter requires at least one field")
	}
	return &SimpleFormInterpreter{fields: maps.Clone(fields)}, nil
}

// Interpret returns the intersection of the configured fields and the
// sheet's form data. The table portion is always empty.
func (s *SimpleFormInterpreter) Interpret(raw models.RawSheetContent) (models.Interpretation, error) {
	scalars := make(map[string]models.Scalar, len(s.fields))
	for name, fieldType := range s.fields {
		value, ok := raw.FormData[name]
		if !ok {
			continue
		}
		scalars[name] = models.Scalar{Key: name, Value: value, Type: fieldType}
	}
	return models.Interpretation{Tables: []models.InterpretedTable{}, Scalars: scalars}, nil
}
