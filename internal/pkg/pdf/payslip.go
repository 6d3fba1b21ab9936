package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipData carries everything the rendered payslip shows.
type PayslipData struct {
	EmployeeName    string
	EmployeeCode    string
	Position        string
	Department      string
	Month           string // "YYYY-MM"
	BasicSalary     decimal.Decimal
	Allowances      decimal.Decimal
	Bonus           decimal.Decimal
	Overtime        decimal.Decimal
	Deductions      decimal.Decimal
	Tax             decimal.Decimal
	PF              decimal.Decimal
	ESI             decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

type Generator interface {
	RenderPayslip(data *PayslipData) ([]byte, error)
}

type payslipGenerator struct {
	companyName string
}

func NewGenerator(companyName string) Generator {
	return &payslipGenerator{companyName: companyName}
}

func (g *payslipGenerator) RenderPayslip(data *PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, g.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Payslip for %s", data.Month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", data.EmployeeName, data.EmployeeCode))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Position: %s", data.Position))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Department: %s", data.Department))
	pdf.Ln(10)

	g.section(pdf, "Earnings")
	g.row(pdf, "Basic Salary", data.BasicSalary)
	g.row(pdf, "Allowances", data.Allowances)
	g.row(pdf, "Bonus", data.Bonus)
	g.row(pdf, "Overtime", data.Overtime)
	g.row(pdf, "Gross Salary", data.GrossSalary)
	pdf.Ln(4)

	g.section(pdf, "Deductions")
	g.row(pdf, "Deductions", data.Deductions)
	g.row(pdf, "Tax", data.Tax)
	g.row(pdf, "Provident Fund", data.PF)
	g.row(pdf, "ESI", data.ESI)
	g.row(pdf, "Total Deductions", data.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(100, 8, "Net Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, data.NetSalary.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *payslipGenerator) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func (g *payslipGenerator) row(pdf *gofpdf.Fpdf, label string, value decimal.Decimal) {
	pdf.CellFormat(100, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, value.StringFixed(2), "", 1, "R", false, 0, "")
}
