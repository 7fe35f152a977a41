package source

import (
	"github.com/xuri/excelize/v2"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// FormSheetName is the worksheet holding label/value form fields in a
// digitized data sheet workbook.
const FormSheetName = "Form"

// ReadWorkbook builds raw sheet content from a digitized data sheet
// workbook: the Form sheet's first two columns become the form data, and
// every other sheet's grid becomes one raw table in workbook order.
func ReadWorkbook(path string) (*models.RawSheetContent, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content := &models.RawSheetContent{FormData: map[string]string{}}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if sheetName == FormSheetName {
			for _, row := range rows {
				if len(row) == 0 || row[0] == "" {
					continue
				}
				value := ""
				if len(row) > 1 {
					value = row[1]
				}
				content.FormData[row[0]] = value
			}
			continue
		}
		content.Tables = append(content.Tables, models.RawTable(rows))
	}

	return content, nil
}
