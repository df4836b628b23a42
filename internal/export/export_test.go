package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"rentdesk/internal/services"
)

func sampleRows() []services.RentReportRow {
	return []services.RentReportRow{
		{
			Month:      "2026-04",
			TenantName: "Anita Desai",
			Location:   "Green View / 101",
			Expected:   1_500_000,
			Paid:       1_500_000,
			Pending:    0,
			Status:     "PAID",
			PaidDate:   "2026-04-03",
		},
		{
			Month:      "2026-04",
			TenantName: "Ramesh Gupta",
			Location:   "Green View / 201 / R1 / Bed 2",
			Expected:   800_000,
			Paid:       300_000,
			Pending:    500_000,
			Status:     "PARTIAL",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Month" || records[0][7] != "Paid Date" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][3] != "15000.00" {
		t.Errorf("expected amount in major units, got %q", records[1][3])
	}
	if records[2][5] != "5000.00" {
		t.Errorf("expected pending 5000.00, got %q", records[2][5])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Rent Report")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "Anita Desai" {
		t.Errorf("expected tenant name, got %q", rows[1][1])
	}

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Rent Report" {
		t.Errorf("expected a single Rent Report sheet, got %v", sheets)
	}
}
