package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/suraksha-labs/suraksha/internal/adapters/reporting"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
)

// reportScanLimit caps how many recent scans go into one incident report.
const reportScanLimit = 100

// ReportHandler generates the downloadable safety report.
type ReportHandler struct {
	Scans    ports.ScanRepository
	Exporter *reporting.PDFExporter
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(scans ports.ScanRepository, exporter *reporting.PDFExporter) *ReportHandler {
	return &ReportHandler{Scans: scans, Exporter: exporter}
}

// HandleSafetyReport renders the recent scans as an incident PDF.
func (h *ReportHandler) HandleSafetyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scans, err := h.Scans.RecentScans(r.Context(), reportScanLimit)
	if err != nil {
		log.Printf("Failed to load scans for report: %v", err)
		http.Error(w, "Failed to load scans", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data, err := h.Exporter.ExportSafetyReport(scans, now)
	if err != nil {
		log.Printf("Failed to render report: %v", err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("suraksha_incident_report_%s.pdf", now.Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
