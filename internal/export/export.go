// Package export renders rent report rows as CSV or XLSX downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"rentdesk/internal/services"
)

var reportHeader = []string{"Month", "Tenant", "Location", "Expected", "Paid", "Pending", "Status", "Paid Date"}

// amount renders a minor-unit amount as a decimal string, e.g. 1250050 -> "12500.50".
func amount(minor int64) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}

// WriteCSV streams the rows as a CSV document.
func WriteCSV(w io.Writer, rows []services.RentReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Month,
			row.TenantName,
			row.Location,
			amount(row.Expected),
			amount(row.Paid),
			amount(row.Pending),
			row.Status,
			row.PaidDate,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX streams the rows as an Excel workbook with a single
// "Rent Report" sheet.
func WriteXLSX(w io.Writer, rows []services.RentReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Rent Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Month,
			row.TenantName,
			row.Location,
			float64(row.Expected) / 100,
			float64(row.Paid) / 100,
			float64(row.Pending) / 100,
			row.Status,
			row.PaidDate,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 16); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
