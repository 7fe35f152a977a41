// Package output serializes interpreted data sheets.
package output

import (
	"encoding/json"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// ToJSON serializes a data sheet to JSON.
func ToJSON(sheet *models.DataSheet, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}
