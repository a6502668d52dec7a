package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Parcels"

var excelColWidths = []float64{15, 15, 10, 10, 12, 18, 15}

// RenderExcel produces the downloadable workbook: one sheet with the shared
// seven columns, a styled header row and a summary block underneath.
func RenderExcel(rep *Aggregated) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, colName, colName, excelColWidths[i])
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	rowIdx := 2
	for _, row := range rows(rep) {
		for i, cell := range row {
			name, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, name, cell); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	// blank spacer, then the summary block
	rowIdx++
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), "SUMMARY"); err != nil {
		return nil, err
	}
	rowIdx++
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), "Total Parcels:")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx), strconv.Itoa(rep.TotalQuantity))
	rowIdx++
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), "Total Earnings:")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx), formatEarning(rep.TotalEarnings))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
