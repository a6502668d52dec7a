package report

import (
	"bytes"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var pdfColWidths = []float64{28, 28, 20, 18, 24, 32, 26}

// RenderPDF produces the printable report document. The creation date is
// pinned so rendering the same report twice yields identical bytes.
func RenderPDF(rep *Aggregated, companyName, filterLabel string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0))
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, tr(companyName))
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 14)
	pdf.Cell(0, 8, tr("Parcel Report - "+filterLabel))
	pdf.Ln(12)

	// header row
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(pdfColWidths[i], 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows(rep) {
		for i, cell := range row {
			pdf.CellFormat(pdfColWidths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, tr("Total Parcels: "+strconv.Itoa(rep.TotalQuantity)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Total Earnings: "+formatEarning(rep.TotalEarnings)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
