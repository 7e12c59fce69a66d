package services

import (
	"bytes"
	"fmt"

	"finmentor/internal/models"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfTopMargin = 14.0
	// pdfBreakY is the vertical position past which the next row must
	// start on a fresh page.
	pdfBreakY = 270.0
)

// pageCursor tracks the write position across pages. All row emission
// goes through advance, so page breaks happen in exactly one place.
type pageCursor struct {
	page int
	y    float64
}

func newPageCursor() *pageCursor {
	return &pageCursor{page: 1, y: pdfTopMargin}
}

// advance moves the cursor down by h, rolling over to a new page when
// the position has passed the break line. Returns true when a page
// break occurred; the caller must mirror it on the document.
func (c *pageCursor) advance(h float64) bool {
	if c.y > pdfBreakY {
		c.page++
		c.y = pdfTopMargin + h
		return true
	}
	c.y += h
	return false
}

func (s *exportService) exportPDF(report *models.FinancialReport) (*ExportResult, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfTopMargin, pdfTopMargin, pdfTopMargin)
	pdf.AddPage()
	cursor := newPageCursor()

	writePDFHeader(pdf, cursor, report)
	writePDFSummary(pdf, cursor, report)
	writePDFAccountsTable(pdf, cursor, report)
	writePDFTransactions(pdf, cursor, report)

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, fmt.Sprintf("Generated by FinMentor on %s",
		report.GeneratedAt.Format("2006-01-02 15:04")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return &ExportResult{
		Data:        buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    reportFilename(report, "pdf"),
	}, nil
}

func writePDFHeader(pdf *gofpdf.Fpdf, cursor *pageCursor, report *models.FinancialReport) {
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FinMentor Financial Report")
	pdf.Ln(8)
	cursor.advance(18)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Prepared for %s (%s)", report.UserName, report.UserEmail))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated on "+report.GeneratedAt.Format("2006-01-02"))
	pdf.Ln(10)
	cursor.advance(21)
}

func writePDFSummary(pdf *gofpdf.Fpdf, cursor *pageCursor, report *models.FinancialReport) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	colW := []float64{62, 62, 62}
	pdf.CellFormat(colW[0], 10, "Total Balance", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 10, "Accounts", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 10, "Transactions", "1", 1, "C", true, 0, "")
	cursor.advance(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(colW[0], 10, fmt.Sprintf("%.2f", report.Summary.TotalBalance), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colW[1], 10, fmt.Sprintf("%d", report.Summary.TotalAccounts), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colW[2], 10, fmt.Sprintf("%d", report.Summary.TotalTransactions), "1", 1, "C", false, 0, "")
	pdf.Ln(6)
	cursor.advance(16)
}

var accountColW = []float64{72, 34, 40, 40}

func writeAccountTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(accountColW[0], 8, "ACCOUNT", "1", 0, "L", true, 0, "")
	pdf.CellFormat(accountColW[1], 8, "TYPE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(accountColW[2], 8, "BALANCE", "1", 0, "R", true, 0, "")
	pdf.CellFormat(accountColW[3], 8, "TRANSACTIONS", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
}

func writePDFAccountsTable(pdf *gofpdf.Fpdf, cursor *pageCursor, report *models.FinancialReport) {
	writeAccountTableHeader(pdf)
	cursor.advance(8)

	for _, account := range report.Accounts {
		if cursor.advance(8) {
			pdf.AddPage()
			pdf.SetY(pdfTopMargin)
			writeAccountTableHeader(pdf)
			cursor.advance(8)
		}
		pdf.CellFormat(accountColW[0], 8, account.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(accountColW[1], 8, account.Type, "1", 0, "C", false, 0, "")
		pdf.CellFormat(accountColW[2], 8, fmt.Sprintf("%.2f", account.Balance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(accountColW[3], 8, fmt.Sprintf("%d", account.TransactionCount), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
	cursor.advance(6)
}

var txColW = []float64{26, 76, 24, 34, 26}

func writeTransactionTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(txColW[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(txColW[1], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
	pdf.CellFormat(txColW[2], 8, "TYPE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(txColW[3], 8, "CATEGORY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(txColW[4], 8, "AMOUNT", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
}

func writePDFTransactions(pdf *gofpdf.Fpdf, cursor *pageCursor, report *models.FinancialReport) {
	for _, account := range report.Accounts {
		if len(account.RecentTransactions) == 0 {
			continue
		}

		if cursor.advance(10) {
			pdf.AddPage()
			pdf.SetY(pdfTopMargin)
			cursor.advance(10)
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(20, 20, 20)
		pdf.Cell(0, 8, account.Name+" - Recent Transactions")
		pdf.Ln(9)

		writeTransactionTableHeader(pdf)
		cursor.advance(8)

		for _, t := range account.RecentTransactions {
			if cursor.advance(8) {
				pdf.AddPage()
				pdf.SetY(pdfTopMargin)
				writeTransactionTableHeader(pdf)
				cursor.advance(8)
			}

			amount := fmt.Sprintf("%.2f", t.Amount)
			if t.Type == models.TransactionTypeExpense {
				amount = "-" + amount
			}

			pdf.CellFormat(txColW[0], 8, t.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(txColW[1], 8, truncateText(t.Description, 46), "1", 0, "L", false, 0, "")
			pdf.CellFormat(txColW[2], 8, t.Type, "1", 0, "C", false, 0, "")
			pdf.CellFormat(txColW[3], 8, truncateText(t.Category, 20), "1", 0, "L", false, 0, "")
			pdf.CellFormat(txColW[4], 8, amount, "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
		cursor.advance(4)
	}
}

// truncateText counts runes, not bytes, so a multibyte description is
// never cut mid-character.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
