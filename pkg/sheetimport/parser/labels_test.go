package parser

import (
	"errors"
	"testing"
)

const sampleText = `JA
Date: 10/3/2025
Time IN: 11:00 AM
Time OUT: 11:25 AM
Goal: identify a possible cause of a given emotion
from an array of 5-6 picture choices
Measure: Identify the cause of emotion from a picture.`

func TestSplitByLabels(t *testing.T) {
	studentKey, spans, err := SplitByLabels(sampleText, DefaultLabels)
	if err != nil {
		t.Fatalf("SplitByLabels failed: %v", err)
	}

	if studentKey != "JA" {
		t.Errorf("Student key = %q, expected %q", studentKey, "JA")
	}
	if len(spans) != len(DefaultLabels) {
		t.Fatalf("Expected %d spans, got %d", len(DefaultLabels), len(spans))
	}

	if got := spans["date"].Value; got != "10/3/2025" {
		t.Errorf("Date = %q, expected %q", got, "10/3/2025")
	}
	if got := spans["time in"].Value; got != "11:00 AM" {
		t.Errorf("Time IN = %q, expected %q", got, "11:00 AM")
	}
	if got := spans["time out"].Value; got != "11:25 AM" {
		t.Errorf("Time OUT = %q, expected %q", got, "11:25 AM")
	}

	// Multi-line spans run up to the next label.
	goal := spans["goal"]
	if goal.Label != "Goal" {
		t.Errorf("Goal label = %q, expected original casing", goal.Label)
	}
	want := "identify a possible cause of a given emotion\nfrom an array of 5-6 picture choices"
	if goal.Value != want {
		t.Errorf("Goal = %q, expected %q", goal.Value, want)
	}
}

func TestSplitByLabelsOrderIndependent(t *testing.T) {
	// Configured label order does not need to match the text order.
	labels := []string{"Measure", "Goal", "Time OUT", "Time IN", "Date"}
	_, spans, err := SplitByLabels(sampleText, labels)
	if err != nil {
		t.Fatalf("SplitByLabels failed: %v", err)
	}
	if got := spans["date"].Value; got != "10/3/2025" {
		t.Errorf("Date = %q, expected %q", got, "10/3/2025")
	}
	if got := spans["measure"].Value; got != "Identify the cause of emotion from a picture." {
		t.Errorf("Measure = %q", got)
	}
}

func TestSplitByLabelsLabelNotFound(t *testing.T) {
	_, _, err := SplitByLabels(sampleText, []string{"Date", "Therapist"})
	var notFound *LabelNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected LabelNotFoundError, got %v", err)
	}
	if notFound.Label != "Therapist" {
		t.Errorf("Label = %q, expected %q", notFound.Label, "Therapist")
	}
}

func TestSplitByLabelsNoColon(t *testing.T) {
	_, spans, err := SplitByLabels("JA\nDate 10/3/2025", []string{"Date"})
	if err != nil {
		t.Fatalf("SplitByLabels failed: %v", err)
	}
	if got := spans["date"].Value; got != "" {
		t.Errorf("Value without colon = %q, expected empty", got)
	}
	if got := spans["date"].Content; got != "Date 10/3/2025" {
		t.Errorf("Content = %q", got)
	}
}

func TestFormData(t *testing.T) {
	form, err := FormData(sampleText, DefaultLabels)
	if err != nil {
		t.Fatalf("FormData failed: %v", err)
	}

	if got := form["Student Key"]; got != "JA" {
		t.Errorf("Student Key = %q, expected %q", got, "JA")
	}
	if got := form["Date"]; got != "10/3/2025" {
		t.Errorf("Date = %q, expected %q", got, "10/3/2025")
	}
	if got := form["Time OUT"]; got != "11:25 AM" {
		t.Errorf("Time OUT = %q, expected %q", got, "11:25 AM")
	}
}
