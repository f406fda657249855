package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"whitepaper_billing/internal/render"
)

const a4WidthMM = 210

// encodePDF wraps a captured layout into a PDF byte stream. It either returns
// the complete stream or an error; a partially written document is never
// surfaced.
func encodePDF(layout *render.DocumentLayout, opts Options) ([]byte, error) {
	margin := opts.MarginMM
	usable := a4WidthMM - 2*margin

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	// Issuer block on the left, title/number/status on the right.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usable/2, 6, layout.Issuer.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(usable/2, 8, layout.Title, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	issuerLines := []string{
		layout.Issuer.Address,
		layout.Issuer.Phone,
		layout.Issuer.Email,
		layout.Issuer.Website,
	}
	if layout.Issuer.VATNumber != "" {
		issuerLines = append(issuerLines, "VAT: "+layout.Issuer.VATNumber)
	}
	rightLines := []string{
		"#" + layout.Number,
		layout.IssueDateLabel + ": " + layout.IssueDate,
		layout.SecondDateLabel + ": " + layout.SecondDate,
		"Status: " + layout.StatusLabel,
	}
	for i := 0; i < len(issuerLines) || i < len(rightLines); i++ {
		left, right := "", ""
		if i < len(issuerLines) {
			left = issuerLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		pdf.CellFormat(usable/2, 5, left, "", 0, "L", false, 0, "")
		pdf.CellFormat(usable/2, 5, right, "", 1, "R", false, 0, "")
	}

	// Recipient block.
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(usable, 6, layout.RecipientHeading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(usable, 5, layout.Recipient.Name, "", 1, "L", false, 0, "")
	if layout.Recipient.ContactPerson != "" {
		pdf.CellFormat(usable, 5, "Attn: "+layout.Recipient.ContactPerson, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(usable, 5, layout.Recipient.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, layout.Recipient.Email, "", 1, "L", false, 0, "")
	if layout.Recipient.VATNumber != "" {
		pdf.CellFormat(usable, 5, "VAT: "+layout.Recipient.VATNumber, "", 1, "L", false, 0, "")
	}

	// Item table.
	pdf.Ln(6)
	descW := usable * 0.40
	qtyW := usable * 0.12
	priceW := usable * 0.18
	taxW := usable * 0.12
	amountW := usable - descW - qtyW - priceW - taxW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(descW, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(priceW, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(taxW, 7, "Tax", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amountW, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range layout.Lines {
		pdf.CellFormat(descW, 6, row.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 6, row.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(priceW, 6, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(taxW, 6, row.TaxRate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountW, 6, row.Amount, "1", 1, "R", false, 0, "")
	}

	labelW := usable - amountW
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(labelW, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 6, layout.Totals.Subtotal, "1", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "VAT", "", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 6, layout.Totals.Tax, "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelW, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 7, layout.Totals.Total, "1", 1, "R", false, 0, "")

	// Notes, terms, bank details, footer.
	writeSection := func(heading, body string) {
		if body == "" {
			return
		}
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(usable, 6, heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(usable, 5, body, "", "L", false)
	}
	writeSection("Notes", layout.Notes)
	writeSection("Terms & Conditions", layout.Terms)

	if layout.Bank != nil {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(usable, 6, "Payment Details", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(usable, 5, "Bank: "+layout.Bank.BankName, "", 1, "L", false, 0, "")
		pdf.CellFormat(usable, 5, "Account Number: "+layout.Bank.AccountNumber, "", 1, "L", false, 0, "")
		pdf.CellFormat(usable, 5, "Branch Code: "+layout.Bank.BranchCode, "", 1, "L", false, 0, "")
		pdf.CellFormat(usable, 5, "Account Type: "+layout.Bank.AccountType, "", 1, "L", false, 0, "")
		pdf.CellFormat(usable, 5, "Please use the document number as payment reference.", "", 1, "L", false, 0, "")
	}

	if layout.FooterNote != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(usable, 5, layout.FooterNote, "", 1, "C", false, 0, "")
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
