package infra

// pdf.go — printable room-completion report using go-pdf/fpdf.
// A4 portrait: summary counters, then the shortage list (room, floor, missing
// item lines), then the complete rooms. Mirrors the on-screen report layout.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateCompletionPDF renders the completion report and returns the raw PDF
// bytes, ready to stream or attach to an email.
func GenerateCompletionPDF(report *dto.CompletionReportResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Room Completion Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, time.Now().Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Summary counters ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	third := contentW / 3
	pdf.CellFormat(third, 7, fmt.Sprintf("Total rooms: %d", report.TotalRooms), "1", 0, "C", false, 0, "")
	pdf.CellFormat(third, 7, fmt.Sprintf("Complete: %d", report.CompleteRooms), "1", 0, "C", false, 0, "")
	pdf.CellFormat(third, 7, fmt.Sprintf("Incomplete: %d", report.IncompleteRooms), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ── Rooms with shortages ─────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Rooms with Shortages", "", 1, "L", false, 0, "")
	shortageCount := 0
	for _, room := range report.Rooms {
		if len(room.MissingItems) == 0 {
			continue
		}
		shortageCount++

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, fmt.Sprintf("Room %s — %s", room.RoomNumber, room.FloorDisplay), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, missing := range room.MissingItems {
			pdf.CellFormat(contentW, 5, fmt.Sprintf("    %s: %d needed", missing.ItemType, missing.Quantity), "", 1, "L", false, 0, "")
		}
		pdf.Ln(1)
	}
	if shortageCount == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "No shortages.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Complete rooms ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Complete Rooms", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, room := range report.Rooms {
		if !room.IsComplete {
			continue
		}
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Room %s — %s", room.RoomNumber, room.FloorDisplay), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
