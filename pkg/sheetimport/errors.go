package sheetimport

import "fmt"

// MissingRequiredFieldError indicates a required metadata field absent from
// the sheet's form data.
type MissingRequiredFieldError struct {
	Key string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q missing from form data", e.Key)
}
