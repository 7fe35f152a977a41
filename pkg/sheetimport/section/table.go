package section

import (
	"fmt"
	"slices"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// TableInterpreter handles sheets whose tables follow a fixed column layout
// ("Word", "Times Prompted", ...). Every raw table must carry all
// configured columns in its header row; matching is exact and
// case-sensitive, with no trimming.
type TableInterpreter struct {
	columns []string
}

// NewTableInterpreter configures a table interpreter over the expected
// column names.
func NewTableInterpreter(columns []string) (*TableInterpreter, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table interpreter requires at least one column")
	}
	return &TableInterpreter{columns: slices.Clone(columns)}, nil
}

// Interpret maps every raw table onto the configured columns, producing one
// interpreted table per raw table in input order. The scalar portion is
// always empty.
func (t *TableInterpreter) Interpret(raw models.RawSheetContent) (models.Interpretation, error) {
	tables := make([]models.InterpretedTable, 0, len(raw.Tables))
	for i, rt := range raw.Tables {
		it, err := t.interpretTable(i, rt)
		if err != nil {
			return models.Interpretation{}, err
		}
		tables = append(tables, it)
	}
	return models.Interpretation{Tables: tables, Scalars: map[string]models.Scalar{}}, nil
}

func (t *TableInterpreter) interpretTable(tableIdx int, raw models.RawTable) (models.InterpretedTable, error) {
	var headers []string
	if len(raw) > 0 {
		headers = raw[0]
	}

	colIndex := make(map[string]int, len(t.columns))
	for _, col := range t.columns {
		idx := slices.Index(headers, col)
		if idx < 0 {
			return models.InterpretedTable{}, &MissingColumnError{Column: col, FoundHeaders: slices.Clone(headers)}
		}
		colIndex[col] = idx
	}

	data := make([]map[string]models.Scalar, 0, max(len(raw)-1, 0))
	for rowIdx := 1; rowIdx < len(raw); rowIdx++ {
		row := make(map[string]models.Scalar, len(t.columns))
		for _, col := range t.columns {
			cell, ok := raw.Cell(rowIdx, colIndex[col])
			if !ok {
				return models.InterpretedTable{}, &MalformedRowError{Table: tableIdx, Row: rowIdx}
			}
			row[col] = models.Scalar{Key: col, Value: cell, Type: models.ScalarText}
		}
		data = append(data, row)
	}

	// Columns echo the configured list, not the raw header order.
	return models.InterpretedTable{Columns: slices.Clone(t.columns), Data: data}, nil
}
