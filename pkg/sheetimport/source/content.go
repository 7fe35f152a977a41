// Package source loads raw sheet content from the formats the collection
// side produces.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// LoadContent reads a RawSheetContent JSON document, the shape produced by
// the form/table extraction collaborator.
func LoadContent(path string) (*models.RawSheetContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var content models.RawSheetContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("invalid sheet content: %w", err)
	}
	if content.FormData == nil {
		content.FormData = map[string]string{}
	}
	return &content, nil
}
