package leave

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// The core PDF fonts only cover cp1252, which lacks the Turkish-specific
// letters. They are folded to their closest Latin form before translation.
var latinFold = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
)

var statusLabels = map[string]string{
	StatusPending:                     "Pending department manager approval",
	StatusApprovedByDepartmentManager: "Approved by department manager, pending HR",
	StatusRejectedByDepartmentManager: "Rejected by department manager",
	StatusApprovedByHRManager:         "Approved",
	StatusRejectedByHRManager:         "Rejected by HR manager",
	StatusCancelled:                   "Cancelled",
}

// RenderLeaveForm renders a one-page A4 leave form for printing and
// signature.
func RenderLeaveForm(l LeaveResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latinFold.Replace(s)) }

	pdf.SetTitle("Leave Request "+l.ID, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Leave Request Form")
	pdf.Ln(14)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, text(label), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, text(value), "1", 1, "L", false, 0, "")
	}

	row("Request", l.ID)
	row("Employee", firstNonEmpty(l.EmployeeName, l.EmployeeID))
	row("Leave type", firstNonEmpty(l.LeaveTypeName, l.LeaveTypeCode, l.LeaveTypeID))
	row("Period", fmt.Sprintf("%s to %s", l.StartDate, l.EndDate))
	row("Working days", fmt.Sprintf("%d", l.TotalDays))
	row("Status", statusLabel(l.Status))
	row("Submitted", l.CreatedAt)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Reason")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, text(l.Reason), "1", "L", false)

	pdf.Ln(10)
	approvalBlock(pdf, text, "Department manager", l.DepartmentManagerID, l.DepartmentManagerApprovalDate, l.DepartmentManagerComments)
	pdf.Ln(4)
	approvalBlock(pdf, text, "HR manager", l.HRManagerID, l.HRManagerApprovalDate, l.HRManagerComments)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render leave form: %w", err)
	}
	return buf.Bytes(), nil
}

func approvalBlock(pdf *gofpdf.Fpdf, text func(string) string, title string, approver, date, comments *string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, text(title))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 7, "Approver", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, text(deref(approver)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Decision date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, text(deref(date)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Comments", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, text(deref(comments)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(60, 14, "Signature", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 14, "", "1", 1, "L", false, 0, "")
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
