// Package parser splits raw OCR text into labeled spans. It is the front
// door for sheets where only line-based text is available, before any form
// or table structure exists.
package parser

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLabels are the labeled sections expected on a standard session
// data sheet, in no particular order.
var DefaultLabels = []string{"Date", "Time IN", "Time OUT", "Goal", "Measure"}

// LabeledSpan is one labeled slice of the raw text.
type LabeledSpan struct {
	// Label is the label as configured.
	Label string
	// Content is the span including the label itself.
	Content string
	// Value is the span content after the first colon, trimmed. Empty when
	// the span carries no colon.
	Value string
}

// LabelNotFoundError indicates an expected label absent from the raw text.
type LabelNotFoundError struct {
	Label string
}

func (e *LabelNotFoundError) Error() string {
	return fmt.Sprintf("label %q not found in sheet text", e.Label)
}

// SplitByLabels locates the first occurrence of each label, slices the text
// into per-label spans running up to the next label (or the end of the
// text), and returns the spans keyed by lowercased label. The unlabeled
// text before the first label is the student key, written in the top left
// of the sheet. Every label must occur in the text.
func SplitByLabels(text string, labels []string) (studentKey string, spans map[string]LabeledSpan, err error) {
	type labelPos struct {
		label string
		pos   int
	}

	positions := make([]labelPos, 0, len(labels))
	for _, label := range labels {
		pos := strings.Index(text, label)
		if pos < 0 {
			return "", nil, &LabelNotFoundError{Label: label}
		}
		positions = append(positions, labelPos{label: label, pos: pos})
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].pos < positions[j].pos })

	spans = make(map[string]LabeledSpan, len(positions))
	for i, lp := range positions {
		end := len(text)
		if i+1 < len(positions) {
			end = positions[i+1].pos
		}
		content := strings.TrimSpace(text[lp.pos:end])

		value := ""
		if _, after, found := strings.Cut(content, ":"); found {
			value = strings.TrimSpace(after)
		}

		spans[strings.ToLower(lp.label)] = LabeledSpan{Label: lp.label, Content: content, Value: value}
	}

	studentKey = strings.TrimSpace(text)
	if len(positions) > 0 {
		studentKey = strings.TrimSpace(text[:positions[0].pos])
	}

	return studentKey, spans, nil
}

// FormData converts raw labeled text into the form-data map the composite
// interpreter consumes: one entry per label holding the span value, plus
// the student key under "Student Key".
func FormData(text string, labels []string) (map[string]string, error) {
	studentKey, spans, err := SplitByLabels(text, labels)
	if err != nil {
		return nil, err
	}
	form := make(map[string]string, len(spans)+1)
	for _, span := range spans {
		form[span.Label] = span.Value
	}
	form["Student Key"] = studentKey
	return form, nil
}
