package salary

import (
	"bytes"
	"context"
	"fmt"

	salaryerrors "paydesk/internal/salary/errors"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF renders the document view of a computed payslip. Generated on
// demand and never persisted server-side.
func (s *service) ExportPDF(ctx context.Context, sessionID, employeeID string) (string, []byte, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", nil, err
	}

	emp, ok := sess.EmployeeByID(employeeID)
	if !ok {
		return "", nil, salaryerrors.ErrEmployeeNotInCompany
	}

	slip, ok := sess.Cache().Get(employeeID)
	if !ok {
		return "", nil, salaryerrors.ErrPayslipNotComputed
	}

	comp, _ := sess.Company()
	doc := buildDocument(comp.Name, emp, slip)

	data, err := buildPayslipPDF(doc)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s_%s_payslip.pdf", emp.FirstName, emp.LastName)
	return filename, data, nil
}

// ExportBatchPDF renders one page per employee with a computed payslip in the
// current selection, narrowed by the same name filter as the employee list.
func (s *service) ExportBatchPDF(ctx context.Context, sessionID, query string) (string, []byte, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", nil, err
	}

	comp, _ := sess.Company()

	var docs []PayslipDocument
	for _, emp := range sess.Employees(query) {
		slip, ok := sess.Cache().Get(emp.EmployeeID)
		if !ok {
			continue
		}
		docs = append(docs, buildDocument(comp.Name, emp, slip))
	}
	if len(docs) == 0 {
		return "", nil, salaryerrors.ErrPayslipNotComputed
	}

	data, err := buildBatchPDF(docs)
	if err != nil {
		return "", nil, err
	}
	return "all_employees_payslip.pdf", data, nil
}

func buildPayslipPDF(doc PayslipDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	writeDocumentPage(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildBatchPDF(docs []PayslipDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	for _, doc := range docs {
		writeDocumentPage(pdf, doc)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDocumentPage(pdf *gofpdf.Fpdf, doc PayslipDocument) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Company: %s", doc.CompanyName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", doc.EmployeeName, doc.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", doc.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", doc.Month))
	pdf.Ln(10)

	writeSection := func(title string, section DocumentSection) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 9, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 12)
		for _, item := range section.Items {
			pdf.Cell(90, 7, item.Label)
			pdf.CellFormat(60, 7, item.Amount, "", 0, "R", false, 0, "")
			pdf.Ln(7)
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(90, 8, "Total")
		pdf.CellFormat(60, 8, section.Total, "T", 0, "R", false, 0, "")
		pdf.Ln(11)
	}

	writeSection("Earnings", doc.Earnings)
	writeSection("Deductions", doc.Deductions)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(90, 10, "Net Salary")
	pdf.CellFormat(60, 10, doc.NetSalary, "T", 0, "R", false, 0, "")
}
