package output

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
	"github.com/slpdata/sheetimport/pkg/sheetimport/section"
)

// SessionSheetName is the worksheet an interpreted sheet is written to.
const SessionSheetName = "Session"

// WriteWorkbook lays an interpreted data sheet out as a workbook: a
// metadata block, each interpreted table, any extra scalars, and for tally
// tables a per-mark count summary with a pie chart.
func WriteWorkbook(sheet *models.DataSheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SessionSheetName); err != nil {
		return err
	}

	row := 1
	meta := [][2]string{
		{"Student Key", sheet.StudentKey},
		{"Date", sheet.Date},
		{"Time IN", sheet.TimeIn},
		{"Time OUT", sheet.TimeOut},
		{"Goal", sheet.StudentGoal},
		{"Measure", sheet.Measure},
	}
	for _, kv := range meta {
		if err := setCells(f, row, kv[0], kv[1]); err != nil {
			return err
		}
		row++
	}
	row++

	for _, table := range sheet.Tables {
		next, err := writeTable(f, row, table)
		if err != nil {
			return err
		}
		row = next + 1
	}

	if len(sheet.Scalars) > 0 {
		if err := writeScalars(f, row, sheet.Scalars); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeTable(f *excelize.File, startRow int, table models.InterpretedTable) (int, error) {
	for i, col := range table.Columns {
		if err := setCell(f, i+1, startRow, col); err != nil {
			return 0, err
		}
	}

	row := startRow + 1
	for _, record := range table.Data {
		for i, col := range table.Columns {
			if err := setCell(f, i+1, row, record[col].Value); err != nil {
				return 0, err
			}
		}
		row++
	}

	if isTallyTable(table) {
		if err := writeTallySummary(f, startRow, table); err != nil {
			return 0, err
		}
	}

	return row, nil
}

func isTallyTable(table models.InterpretedTable) bool {
	return len(table.Columns) == 1 && table.Columns[0] == section.TallyColumn
}

// writeTallySummary counts the tally marks and writes a Mark/Count block
// beside the tally column, with a pie chart of the distribution.
func writeTallySummary(f *excelize.File, startRow int, table models.InterpretedTable) error {
	counts := map[string]int{}
	var order []string
	if len(table.Data) > 0 {
		for _, opt := range table.Data[0][section.TallyColumn].ChoiceOptions {
			counts[opt] = 0
			order = append(order, opt)
		}
	}
	for _, record := range table.Data {
		mark := record[section.TallyColumn].Value
		if _, seen := counts[mark]; !seen {
			order = append(order, mark)
		}
		counts[mark]++
	}
	if len(order) == 0 {
		return nil
	}

	if err := setCell(f, 3, startRow, "Mark"); err != nil {
		return err
	}
	if err := setCell(f, 4, startRow, "Count"); err != nil {
		return err
	}
	row := startRow + 1
	for _, mark := range order {
		if err := setCell(f, 3, row, mark); err != nil {
			return err
		}
		if err := setCell(f, 4, row, counts[mark]); err != nil {
			return err
		}
		row++
	}
	if err := setCell(f, 3, row, "Total"); err != nil {
		return err
	}
	if err := setCell(f, 4, row, len(table.Data)); err != nil {
		return err
	}

	anchor, err := excelize.CoordinatesToCellName(6, startRow)
	if err != nil {
		return err
	}
	return f.AddChart(SessionSheetName, anchor, &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "Tally Distribution",
			Categories: fmt.Sprintf("%s!$C$%d:$C$%d", SessionSheetName, startRow+1, startRow+len(order)),
			Values:     fmt.Sprintf("%s!$D$%d:$D$%d", SessionSheetName, startRow+1, startRow+len(order)),
		}},
		Title: []excelize.RichTextRun{{Text: "Tally Distribution"}},
	})
}

func writeScalars(f *excelize.File, startRow int, scalars map[string]models.Scalar) error {
	if err := setCells(f, startRow, "Field", "Value"); err != nil {
		return err
	}

	keys := make([]string, 0, len(scalars))
	for key := range scalars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	row := startRow + 1
	for _, key := range keys {
		if err := setCells(f, row, key, scalars[key].Value); err != nil {
			return err
		}
		row++
	}
	return nil
}

// setCells writes a label/value pair into columns A and B of the given row.
func setCells(f *excelize.File, row int, label, value string) error {
	if err := setCell(f, 1, row, label); err != nil {
		return err
	}
	return setCell(f, 2, row, value)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SessionSheetName, cell, value)
}
