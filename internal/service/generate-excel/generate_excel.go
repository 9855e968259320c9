// Package generate_excel renders the work-history summary workbook for
// download: one sheet of yearly totals, one sheet of work-center load.
package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"workhistory/internal/storage"
)

type GenerateExcelStorage interface {
	FullSummary(ctx context.Context) (*storage.FullSummary, error)
}

type GenerateExcelService struct {
	rollups GenerateExcelStorage
}

func NewGenerateService(rollups GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{rollups: rollups}
}

func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	summary, err := g.rollups.FullSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	yearSheet := "Yearly Summary"
	f.SetSheetName("Sheet1", yearSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	yearHeaders := []string{
		"Year", "Planned Hours", "Actual Hours", "Overrun Hours", "Ghost Hours",
		"NCR Hours", "Planned Cost", "Actual Cost", "Jobs", "Operations",
		"Customers", "Parts",
	}
	for i, name := range yearHeaders {
		f.SetCellValue(yearSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(yearSheet, "A1", cellName(len(yearHeaders), 1), headerStyle)

	for rowIdx, y := range summary.YearlyBreakdown {
		rowNum := rowIdx + 2
		f.SetCellValue(yearSheet, cellName(1, rowNum), y.Year)
		f.SetCellValue(yearSheet, cellName(2, rowNum), y.PlannedHours)
		f.SetCellValue(yearSheet, cellName(3, rowNum), y.ActualHours)
		f.SetCellValue(yearSheet, cellName(4, rowNum), y.OverrunHours)
		f.SetCellValue(yearSheet, cellName(5, rowNum), y.GhostHours)
		f.SetCellValue(yearSheet, cellName(6, rowNum), y.NCRHours)
		f.SetCellValue(yearSheet, cellName(7, rowNum), y.PlannedCost)
		f.SetCellValue(yearSheet, cellName(8, rowNum), y.ActualCost)
		f.SetCellValue(yearSheet, cellName(9, rowNum), y.JobCount)
		f.SetCellValue(yearSheet, cellName(10, rowNum), y.OperationCount)
		f.SetCellValue(yearSheet, cellName(11, rowNum), y.CustomerCount)
		f.SetCellValue(yearSheet, cellName(12, rowNum), y.PartCount)
	}

	// Totals row under the yearly table.
	totalRow := len(summary.YearlyBreakdown) + 2
	f.SetCellValue(yearSheet, cellName(1, totalRow), "Total")
	f.SetCellValue(yearSheet, cellName(2, totalRow), summary.TotalPlannedHours)
	f.SetCellValue(yearSheet, cellName(3, totalRow), summary.TotalActualHours)
	f.SetCellValue(yearSheet, cellName(4, totalRow), summary.TotalOverrunHours)
	f.SetCellValue(yearSheet, cellName(6, totalRow), summary.TotalNCRHours)
	f.SetCellValue(yearSheet, cellName(7, totalRow), summary.TotalPlannedCost)
	f.SetCellValue(yearSheet, cellName(8, totalRow), summary.TotalActualCost)
	f.SetCellValue(yearSheet, cellName(9, totalRow), summary.TotalJobs)
	f.SetCellValue(yearSheet, cellName(10, totalRow), summary.TotalOperations)
	f.SetCellStyle(yearSheet, cellName(1, totalRow), cellName(len(yearHeaders), totalRow), headerStyle)

	wcSheet := "Work Centers"
	if _, err := f.NewSheet(wcSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	wcHeaders := []string{
		"Work Center", "Jobs", "Operations", "Planned Hours", "Actual Hours",
		"Overrun Hours", "Overrun Cost",
	}
	for i, name := range wcHeaders {
		f.SetCellValue(wcSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(wcSheet, "A1", cellName(len(wcHeaders), 1), headerStyle)

	for rowIdx, wc := range summary.WorkCenterBreakdown {
		rowNum := rowIdx + 2
		f.SetCellValue(wcSheet, cellName(1, rowNum), wc.WorkCenter)
		f.SetCellValue(wcSheet, cellName(2, rowNum), wc.JobCount)
		f.SetCellValue(wcSheet, cellName(3, rowNum), wc.Operations)
		f.SetCellValue(wcSheet, cellName(4, rowNum), wc.PlannedHours)
		f.SetCellValue(wcSheet, cellName(5, rowNum), wc.ActualHours)
		f.SetCellValue(wcSheet, cellName(6, rowNum), wc.OverrunHours)
		f.SetCellValue(wcSheet, cellName(7, rowNum), wc.OverrunCost)
	}

	for _, sheet := range []string{yearSheet, wcSheet} {
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			XSplit:      0,
			YSplit:      1,
			TopLeftCell: "A2",
		})
		f.SetColWidth(sheet, "A", "L", 15)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
