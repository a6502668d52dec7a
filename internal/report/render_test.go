package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *Aggregated {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	spx := models.Parcel{
		TaskID: "TASK-01", SellerID: "SELL-01", Courier: models.CourierSPX,
		Quantity: 150, PickedUpSameDay: true, Date: today,
		TotalEarning: decimal.RequireFromString("100.00"),
	}
	flash := models.Parcel{
		TaskID: "TASK-02", SellerID: "SELL-02", Courier: models.CourierFlash,
		Quantity: 40, PickedUpSameDay: false, Date: today,
		TotalEarning: decimal.RequireFromString("90.00"),
	}
	return &Aggregated{
		Entries:       []models.Parcel{spx, flash},
		TotalQuantity: 190,
		TotalEarnings: decimal.RequireFromString("190.00"),
	}
}

func TestRowsColumns(t *testing.T) {
	rep := sampleReport()
	got := rows(rep)

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for i, row := range got {
		if len(row) != len(columns) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}

	spx := got[0]
	if spx[0] != "TASK-01" || spx[2] != "SPX" || spx[3] != "150" {
		t.Fatalf("unexpected SPX row: %v", spx)
	}
	if spx[5] != "Yes" {
		t.Fatalf("SPX same-day cell = %q, want Yes", spx[5])
	}
	if spx[6] != "₱100.00" {
		t.Fatalf("SPX earning cell = %q, want ₱100.00", spx[6])
	}

	flash := got[1]
	if flash[5] != "N/A" {
		t.Fatalf("Flash same-day cell = %q, want N/A", flash[5])
	}
	if flash[6] != "₱90.00" {
		t.Fatalf("Flash earning cell = %q, want ₱90.00", flash[6])
	}
}

func TestRowsDoNotMutateReport(t *testing.T) {
	rep := sampleReport()
	_ = rows(rep)
	_ = rows(rep)
	if rep.TotalQuantity != 190 || rep.TotalEarnings.StringFixed(2) != "190.00" || len(rep.Entries) != 2 {
		t.Fatal("rendering mutated the aggregated report")
	}
}

func TestRenderHTML(t *testing.T) {
	rep := sampleReport()
	html, err := RenderHTML(rep, "L&A Logistic Services", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"L&amp;A Logistic Services",
		"Parcel Report - today",
		"Total Parcels: 190",
		"Total Earnings: ₱190.00",
		"<td>TASK-01</td>",
		"<td>N/A</td>",
		"<td>₱90.00</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html fragment missing %q", want)
		}
	}

	if strings.Contains(html, "<html>") {
		t.Error("fragment should not carry an outer <html> shell")
	}
}

func TestRenderHTMLEscapesUserContent(t *testing.T) {
	rep := sampleReport()
	rep.Entries[0].TaskID = `<script>alert(1)</script>`

	html, err := RenderHTML(rep, "Acme", "week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("task id was not HTML-escaped")
	}
}

func TestRenderHTMLIdempotent(t *testing.T) {
	rep := sampleReport()
	a, err := RenderHTML(rep, "Acme", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := RenderHTML(rep, "Acme", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatal("two renders of the same report differ")
	}
}

func TestRenderPDF(t *testing.T) {
	rep := sampleReport()
	out, err := RenderPDF(rep, "L&A Logistic Services", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", out[:8])
	}

	again, err := RenderPDF(rep, "L&A Logistic Services", "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, again) {
		t.Fatal("two PDF renders of the same report differ")
	}
}

func TestRenderExcel(t *testing.T) {
	rep := sampleReport()
	out, err := RenderExcel(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("could not reopen workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	if err != nil || header != "Task ID" {
		t.Fatalf("A1 = %q (err %v), want Task ID", header, err)
	}
	if v, _ := f.GetCellValue(sheetName, "F3"); v != "N/A" {
		t.Fatalf("F3 = %q, want N/A", v)
	}
	if v, _ := f.GetCellValue(sheetName, "G2"); v != "₱100.00" {
		t.Fatalf("G2 = %q, want ₱100.00", v)
	}
	if v, _ := f.GetCellValue(sheetName, "A5"); v != "SUMMARY" {
		t.Fatalf("A5 = %q, want SUMMARY", v)
	}
	if v, _ := f.GetCellValue(sheetName, "B6"); v != "190" {
		t.Fatalf("B6 = %q, want 190", v)
	}
	if v, _ := f.GetCellValue(sheetName, "B7"); v != "₱190.00" {
		t.Fatalf("B7 = %q, want ₱190.00", v)
	}
}

// The same workbook content must come out for the same report, even if the
// container bytes can differ (zip metadata); compare cell-by-cell.
func TestRenderExcelIdempotent(t *testing.T) {
	rep := sampleReport()
	a, err := RenderExcel(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := RenderExcel(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fa, err := excelize.OpenReader(bytes.NewReader(a))
	if err != nil {
		t.Fatalf("could not reopen workbook: %v", err)
	}
	defer fa.Close()
	fb, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("could not reopen workbook: %v", err)
	}
	defer fb.Close()

	rowsA, err := fa.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	rowsB, err := fb.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if len(rowsA) != len(rowsB) {
		t.Fatalf("row counts differ: %d vs %d", len(rowsA), len(rowsB))
	}
	for i := range rowsA {
		if strings.Join(rowsA[i], "|") != strings.Join(rowsB[i], "|") {
			t.Fatalf("row %d differs: %v vs %v", i, rowsA[i], rowsB[i])
		}
	}
}
