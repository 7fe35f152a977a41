package models

import "testing"

func TestDataSheetRegisterTableAppends(t *testing.T) {
	sheet := NewDataSheet("JA", "goal", "10/3/2025", "11:00 AM", "11:25 AM", "accuracy")

	sheet.RegisterTable(InterpretedTable{Columns: []string{"a"}})
	sheet.RegisterTable(InterpretedTable{Columns: []string{"b"}})
	sheet.RegisterTable(InterpretedTable{Columns: []string{"a"}})

	if len(sheet.Tables) != 3 {
		t.Fatalf("Expected 3 tables, got %d", len(sheet.Tables))
	}
	if sheet.Tables[0].Columns[0] != "a" || sheet.Tables[1].Columns[0] != "b" {
		t.Error("Tables should keep registration order")
	}
}

func TestDataSheetRegisterScalarOverwrites(t *testing.T) {
	sheet := NewDataSheet("JA", "goal", "10/3/2025", "11:00 AM", "11:25 AM", "accuracy")

	sheet.RegisterScalar("Total", Scalar{Key: "Total", Value: "3", Type: ScalarInt})
	sheet.RegisterScalar("Total", Scalar{Key: "Total", Value: "7", Type: ScalarInt})

	if len(sheet.Scalars) != 1 {
		t.Fatalf("Expected 1 scalar, got %d", len(sheet.Scalars))
	}
	if got := sheet.Scalars["Total"].Value; got != "7" {
		t.Errorf("Total = %q, expected %q", got, "7")
	}
}

func TestDataSheetFreshContainersPerSheet(t *testing.T) {
	first := NewDataSheet("A", "", "", "", "", "")
	first.RegisterTable(InterpretedTable{Columns: []string{"x"}})
	first.RegisterScalar("k", Scalar{Key: "k"})

	second := NewDataSheet("B", "", "", "", "", "")
	if len(second.Tables) != 0 || len(second.Scalars) != 0 {
		t.Error("New sheets must not share containers with earlier sheets")
	}
}

func TestDataSheetClone(t *testing.T) {
	sheet := NewDataSheet("JA", "goal", "10/3/2025", "11:00 AM", "11:25 AM", "accuracy")
	sheet.RegisterTable(InterpretedTable{
		Columns: []string{"Word"},
		Data:    []map[string]Scalar{{"Word": {Key: "Word", Value: "Ball", Type: ScalarText}}},
	})
	sheet.RegisterScalar("Total", Scalar{Key: "Total", Value: "3", Type: ScalarInt})

	clone, err := sheet.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	sheet.RegisterTable(InterpretedTable{Columns: []string{"extra"}})
	sheet.RegisterScalar("Total", Scalar{Key: "Total", Value: "9", Type: ScalarInt})
	sheet.Tables[0].Data[0]["Word"] = Scalar{Key: "Word", Value: "Cup", Type: ScalarText}

	if len(clone.Tables) != 1 {
		t.Errorf("Clone tables = %d, expected 1", len(clone.Tables))
	}
	if got := clone.Scalars["Total"].Value; got != "3" {
		t.Errorf("Clone Total = %q, expected %q", got, "3")
	}
	if got := clone.Tables[0].Data[0]["Word"].Value; got != "Ball" {
		t.Errorf("Clone cell = %q, mutation leaked through the copy", got)
	}
}
