package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
)

// Type discriminates the section interpreter variants in a template
// configuration.
type Type string

const (
	// TypeTable selects the column-mapped table interpreter.
	TypeTable Type = "table"
	// TypeRunningTally selects the running tally interpreter.
	TypeRunningTally Type = "running_tally"
	// TypeSimpleForm selects the simple form interpreter.
	TypeSimpleForm Type = "simple_form"
)

// ConfigBody holds the variant-specific settings of one template entry:
// Columns for table sections, TallyType and ChoiceOptions for running tally
// sections, Fields for simple form sections.
type ConfigBody struct {
	Columns       []string                     `json:"columns,omitempty"`
	TallyType     models.ScalarType            `json:"tally_type,omitempty"`
	ChoiceOptions []string                     `json:"choice_options,omitempty"`
	Fields        map[string]models.ScalarType `json:"fields,omitempty"`
}

// Config is one entry of a student's template: a discriminator plus the
// settings for that interpreter variant.
type Config struct {
	Type          Type       `json:"type"`
	Configuration ConfigBody `json:"configuration"`
}

// Build constructs the section interpreter this config describes.
func (c Config) Build() (Interpreter, error) {
	switch c.Type {
	case TypeTable:
		return NewTableInterpreter(c.Configuration.Columns)
	case TypeRunningTally:
		return NewRunningTallyInterpreter(c.Configuration.TallyType, c.Configuration.ChoiceOptions), nil
	case TypeSimpleForm:
		return NewSimpleFormInterpreter(c.Configuration.Fields)
	default:
		return nil, fmt.Errorf("unknown section type %q", c.Type)
	}
}

// BuildAll constructs interpreters for an ordered template, preserving the
// template order.
func BuildAll(configs []Config) ([]Interpreter, error) {
	interpreters := make([]Interpreter, 0, len(configs))
	for i, c := range configs {
		in, err := c.Build()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		interpreters = append(interpreters, in)
	}
	return interpreters, nil
}

// LoadConfigs reads an ordered template configuration from a JSON file.
func LoadConfigs(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var configs []Config
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("invalid template configuration: %w", err)
	}
	return configs, nil
}
