package section

import (
	"slices"
	"strings"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// TallyColumn is the single column name under which tally marks are
// emitted.
const TallyColumn = "Tally"

// RunningTallyInterpreter handles sheets whose tables are grids of tally
// marks annotated as the session happens (Y/N/P boxes, stroke counts).
// Every table is treated as one running list: cells are concatenated in
// row-major order and each character becomes one tally entry, so a
// multi-character cell produces several marks.
type RunningTallyInterpreter struct {
	tallyType     models.ScalarType
	choiceOptions []string
}

// NewRunningTallyInterpreter configures a tally interpreter. choiceOptions
// may be empty unless tallyType is ScalarChoice.
func NewRunningTallyInterpreter(tallyType models.ScalarType, choiceOptions []string) *RunningTallyInterpreter {
	return &RunningTallyInterpreter{tallyType: tallyType, choiceOptions: slices.Clone(choiceOptions)}
}

// Interpret expands every raw table into a single-column tally table, one
// per raw table in input order. Empty tables stay in the output with zero
// rows. The scalar portion is always empty.
func (r *RunningTallyInterpreter) Interpret(raw models.RawSheetContent) (models.Interpretation, error) {
	tables := make([]models.InterpretedTable, 0, len(raw.Tables))
	for _, rt := range raw.Tables {
		tables = append(tables, r.interpretTable(rt))
	}
	return models.Interpretation{Tables: tables, Scalars: map[string]models.Scalar{}}, nil
}

func (r *RunningTallyInterpreter) interpretTable(raw models.RawTable) models.InterpretedTable {
	var marks strings.Builder
	for _, row := range raw {
		for _, cell := range row {
			marks.WriteString(cell)
		}
	}

	data := []map[string]models.Scalar{}
	for _, mark := range marks.String() {
		data = append(data, map[string]models.Scalar{
			TallyColumn: {
				Key:           TallyColumn,
				Value:         string(mark),
				Type:          r.tallyType,
				ChoiceOptions: r.choiceOptions,
			},
		})
	}

	return models.InterpretedTable{Columns: []string{TallyColumn}, Data: data}
}
