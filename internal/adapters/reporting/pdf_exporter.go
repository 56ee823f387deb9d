// Package reporting renders safety reports for download and offline filing.
package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// PDFExporter exports safety reports to PDF format.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportSafetyReport generates an incident-style PDF covering the given
// scans, suitable for submission to a local cyber cell.
func (e *PDFExporter) ExportSafetyReport(scans []domain.ScanRecord, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, generatedAt)
	e.addSummary(pdf, scans)
	e.addScanTable(pdf, scans)
	e.addFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, generatedAt time.Time) {
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 12, "Cyber Security Incident Report", "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Detected By: Suraksha Chakra Engine", "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (e *PDFExporter) addSummary(pdf *gofpdf.Fpdf, scans []domain.ScanRecord) {
	var danger, warning int
	for _, s := range scans {
		switch s.Status {
		case domain.StatusDanger:
			danger++
		case domain.StatusWarning:
			warning++
		}
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Summary:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Networks scanned: %d", len(scans)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Dangerous networks: %d", danger), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Networks with warnings: %d", warning), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (e *PDFExporter) addScanTable(pdf *gofpdf.Fpdf, scans []domain.ScanRecord) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Incident Details:", "", 1, "L", false, 0, "")

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(45, 8, "SSID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "BSSID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Encryption", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, s := range scans {
		r, g, b := statusColor(s.Status)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(45, 7, truncate(s.SSID, 28), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, s.BSSID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(s.Encryption), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", s.Score), "1", 0, "C", false, 0, "")
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(25, 7, string(s.Status), "1", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)
}

func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Action Required:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, "This report is generated automatically. Please submit this to your local Police Station or Cyber Cell.", "", "L", false)
}

func statusColor(status domain.NetworkStatus) (int, int, int) {
	switch status {
	case domain.StatusDanger:
		return 200, 0, 0
	case domain.StatusWarning:
		return 204, 102, 0
	default:
		return 0, 128, 0
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
