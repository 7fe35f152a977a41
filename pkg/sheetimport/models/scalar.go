// Package models defines the data structures for sheet interpretation.
package models

import (
	"fmt"
	"slices"
)

// ScalarType identifies how a scalar value should be read.
type ScalarType string

const (
	// ScalarText is a free-form text value.
	ScalarText ScalarType = "text"
	// ScalarInt is an integer count.
	ScalarInt ScalarType = "int"
	// ScalarChoice is one value out of a fixed set of options.
	ScalarChoice ScalarType = "choice"
	// ScalarDate is a calendar date.
	ScalarDate ScalarType = "date"
	// ScalarBoolean is a yes/no value.
	ScalarBoolean ScalarType = "boolean"
)

// Scalar is a single typed, labeled value extracted from a data sheet.
// The value stays the raw extracted string; the type records how the
// template declared the field and is not applied as a conversion.
type Scalar struct {
	Key   string     `json:"key"`
	Value string     `json:"value"`
	Type  ScalarType `json:"type"`
	// ChoiceOptions is the ordered set of allowed values. Only meaningful
	// when Type is ScalarChoice.
	ChoiceOptions []string `json:"choice_options,omitempty"`
}

// Equal reports whether two scalars carry the same key, value, type and
// choice options.
func (s Scalar) Equal(o Scalar) bool {
	return s.Key == o.Key && s.Value == o.Value && s.Type == o.Type &&
		slices.Equal(s.ChoiceOptions, o.ChoiceOptions)
}

// Validate checks a choice scalar's value against its options. Scalars of
// other types always pass. Construction does not call this; validation is
// opt-in at the interpreter level.
func (s Scalar) Validate() error {
	if s.Type != ScalarChoice {
		return nil
	}
	if !slices.Contains(s.ChoiceOptions, s.Value) {
		return &InvalidScalarValueError{Key: s.Key, Value: s.Value, Options: s.ChoiceOptions}
	}
	return nil
}

// InvalidScalarValueError indicates a choice scalar whose value is not one
// of its options.
type InvalidScalarValueError struct {
	Key     string
	Value   string
	Options []string
}

func (e *InvalidScalarValueError) Error() string {
	return fmt.Sprintf("invalid value %q for choice field %q (options: %v)", e.Value, e.Key, e.Options)
}
