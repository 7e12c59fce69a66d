package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"finmentor/internal/models"
)

// Export formats accepted by the report endpoint.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

type exportService struct {
	metrics MetricsRecorderInterface
}

func NewExportService(metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{metrics: metrics}
}

// Export encodes the report into the requested format. Encoders are pure
// over the report object; a failure returns an error and no partial data.
func (s *exportService) Export(report *models.FinancialReport, format string) (*ExportResult, error) {
	started := time.Now()

	var result *ExportResult
	var err error

	switch strings.ToLower(format) {
	case FormatJSON, "":
		result, err = s.exportJSON(report)
	case FormatCSV:
		result, err = s.exportCSV(report)
	case FormatHTML:
		result, err = s.exportHTML(report)
	case FormatPDF:
		result, err = s.exportPDF(report)
	default:
		return nil, ErrUnsupportedFormat
	}

	status := "success"
	if err != nil {
		status = "failed"
	}
	s.metrics.IncrementCounter("report_export", map[string]string{
		"format": strings.ToLower(format),
		"status": status,
	})
	s.metrics.RecordProcessingTime("report_export", time.Since(started))

	if err != nil {
		slog.Error("report export failed", "format", format, "error", err)
		return nil, err
	}
	return result, nil
}

func (s *exportService) exportJSON(report *models.FinancialReport) (*ExportResult, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as JSON: %w", err)
	}

	return &ExportResult{
		Data:        data,
		ContentType: "application/json",
		Filename:    reportFilename(report, "json"),
	}, nil
}

// exportCSV writes one row per account. The csv writer handles quoting,
// so account names containing commas or quotes round-trip correctly.
// Balances use the shortest decimal form, so a whole-number balance
// stays a whole number.
func (s *exportService) exportCSV(report *models.FinancialReport) (*ExportResult, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Account Name", "Balance", "Type", "Transaction Count"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, account := range report.Accounts {
		record := []string{
			account.Name,
			strconv.FormatFloat(account.Balance, 'f', -1, 64),
			account.Type,
			strconv.Itoa(account.TransactionCount),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &ExportResult{
		Data:        buf.Bytes(),
		ContentType: "text/csv",
		Filename:    reportFilename(report, "csv"),
	}, nil
}

func (s *exportService) exportHTML(report *models.FinancialReport) (*ExportResult, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>FinMentor Financial Report</title>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<h1>FinMentor Financial Report</h1>\n")
	fmt.Fprintf(&b, "<p>Prepared for %s (%s)</p>\n",
		html.EscapeString(report.UserName), html.EscapeString(report.UserEmail))
	fmt.Fprintf(&b, "<p>Generated on %s</p>\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("<h2>Summary</h2>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Total Balance: %.2f</li>\n", report.Summary.TotalBalance)
	fmt.Fprintf(&b, "<li>Total Accounts: %d</li>\n", report.Summary.TotalAccounts)
	fmt.Fprintf(&b, "<li>Total Transactions: %d</li>\n", report.Summary.TotalTransactions)
	b.WriteString("</ul>\n")

	for _, account := range report.Accounts {
		fmt.Fprintf(&b, "<h2>%s (%s)</h2>\n",
			html.EscapeString(account.Name), html.EscapeString(account.Type))
		fmt.Fprintf(&b, "<p>Balance: %.2f | Transactions: %d</p>\n",
			account.Balance, account.TransactionCount)

		if len(account.RecentTransactions) == 0 {
			b.WriteString("<p>No recent transactions.</p>\n")
			continue
		}

		b.WriteString("<table border=\"1\">\n")
		b.WriteString("<tr><th>Date</th><th>Description</th><th>Type</th><th>Category</th><th>Amount</th></tr>\n")
		for _, t := range account.RecentTransactions {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%.2f</td></tr>\n",
				t.Date.Format("2006-01-02"),
				html.EscapeString(t.Description),
				t.Type,
				html.EscapeString(t.Category),
				t.Amount)
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("</body>\n</html>\n")

	return &ExportResult{
		Data:        []byte(b.String()),
		ContentType: "text/html",
		Filename:    reportFilename(report, "html"),
	}, nil
}

func reportFilename(report *models.FinancialReport, extension string) string {
	return fmt.Sprintf("FinMentor-Report-%s.%s", report.GeneratedAt.Format("2006-01-02"), extension)
}
