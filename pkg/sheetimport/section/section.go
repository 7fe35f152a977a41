// Package section implements the section interpreters that give meaning to
// individual pieces of raw sheet content.
package section

import "github.com/slpdata/sheetimport/pkg/sheetimport/models"

// Interpreter extracts one family of structured data (a table shape, a
// tally grid or a set of form fields) from raw sheet content.
//
// Implementations are pure functions of their configuration and the input:
// no side effects, no shared state, safe to invoke repeatedly and in any
// order relative to sibling interpreters.
type Interpreter interface {
	Interpret(raw models.RawSheetContent) (models.Interpretation, error)
}
