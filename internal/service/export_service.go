package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// ExportService renders a project's budget and deal metrics as downloadable
// documents. Exports are built from the same service reads the API uses, so
// variances and totals always match what the screens show.
type ExportService struct {
	projectSvc *ProjectService
	budgetSvc  *BudgetService
	dealSvc    *DealService
}

// NewExportService creates a new ExportService with the provided service dependencies.
func NewExportService(projectSvc *ProjectService, budgetSvc *BudgetService, dealSvc *DealService) *ExportService {
	return &ExportService{
		projectSvc: projectSvc,
		budgetSvc:  budgetSvc,
		dealSvc:    dealSvc,
	}
}

var budgetExportHeader = []string{
	"Category", "Item", "Qty", "Unit", "Rate",
	"Underwriting", "Forecast", "Actual",
	"Forecast Variance", "Actual Variance", "Total Variance",
}

// ExportBudgetExcel renders a project's budget as an Excel workbook with a
// Budget sheet and a Summary sheet.
func (s *ExportService) ExportBudgetExcel(projectID, userID string) ([]byte, string, error) {
	project, err := s.projectSvc.GetProject(projectID)
	if err != nil {
		return nil, "", err
	}

	lines, err := s.budgetSvc.GetBudget(projectID)
	if err != nil {
		return nil, "", err
	}

	report, err := s.dealSvc.GetDealReport(projectID, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const budgetSheet = "Budget"
	f.SetSheetName("Sheet1", budgetSheet)

	for col, title := range budgetExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(budgetSheet, cell, title)
	}

	for i, line := range lines {
		row := i + 2
		values := []any{
			line.Category, line.Item, line.Qty, line.Unit, line.Rate,
			line.UnderwritingAmount, line.ForecastAmount, nilableAmount(line.ActualAmount),
			round(line.Variances.Forecast), round(line.Variances.Actual), round(line.Variances.Total),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(budgetSheet, cell, value)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", fmt.Errorf("failed to add summary sheet: %w", err)
	}

	summaryRows := [][2]any{
		{"Project", project.Name},
		{"Status", project.Status},
		{"ARV", nilableAmount(project.ARV)},
		{"Purchase Price", nilableAmount(project.PurchasePrice)},
		{"Rehab Budget", project.RehabBudget},
		{"Contingency", report.Contingency},
		{"Rehab + Contingency", report.RehabWithContingency},
		{"Holding Costs", report.HoldingCosts},
		{"Selling Costs", report.SellingCosts},
		{"Total Investment", report.TotalInvestment},
		{"Gross Profit", report.GrossProfit},
		{"ROI %", report.ROIPercent},
		{"MAO", report.MAO},
		{"Deal Quality", report.Quality},
	}
	for i, row := range summaryRows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), exportFilename(project, "xlsx"), nil
}

// ExportBudgetPDF renders a project's deal metrics and budget as a PDF
// report.
func (s *ExportService) ExportBudgetPDF(projectID, userID string) ([]byte, string, error) {
	project, err := s.projectSvc.GetProject(projectID)
	if err != nil {
		return nil, "", err
	}

	lines, err := s.budgetSvc.GetBudget(projectID)
	if err != nil {
		return nil, "", err
	}

	report, err := s.dealSvc.GetDealReport(projectID, userID)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, project.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s, %s, %s %s", project.Address, project.City, project.State, project.Zip), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Deal Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	metrics := [][2]string{
		{"Total Investment", money(report.TotalInvestment)},
		{"Gross Profit", money(report.GrossProfit)},
		{"ROI", fmt.Sprintf("%.2f%%", report.ROIPercent)},
		{"MAO", money(report.MAO)},
		{"Deal Quality", report.Quality},
	}
	for _, m := range metrics {
		pdf.CellFormat(60, 6, m[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, m[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Budget", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{35, 55, 25, 25, 25, 25}
	headers := []string{"Category", "Item", "Underwriting", "Forecast", "Actual", "Variance"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		actual := ""
		if line.ActualAmount != nil {
			actual = money(*line.ActualAmount)
		}
		cells := []string{
			line.Category,
			line.Item,
			money(line.UnderwritingAmount),
			money(line.ForecastAmount),
			actual,
			money(round(line.Variances.Total)),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write pdf: %w", err)
	}

	return buf.Bytes(), exportFilename(project, "pdf"), nil
}

func exportFilename(project model.Project, ext string) string {
	name := project.Name
	if name == "" {
		name = project.ID
	}
	return fmt.Sprintf("%s-budget.%s", name, ext)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// nilableAmount keeps unknown amounts blank in exports instead of 0.
func nilableAmount(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
