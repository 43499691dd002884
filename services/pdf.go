package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"yatrat/planner"
)

// GenerateItineraryPDF renders a resolved itinerary as a PDF and returns
// raw bytes (no filesystem needed).
func GenerateItineraryPDF(it planner.Itinerary, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(21, 71, 52) // deep green
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Yatrat", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(240, 200, 90)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Day-by-Day Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Trip Overview ─────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	title := fmt.Sprintf("%s — %d Day Trip", it.CityName, it.RequestedDays)
	pdf.CellFormat(170, 9, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(170, 6, "Generated "+generatedAt.Format("02 Jan 2006, 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	// ── Coverage Notice ───────────────────────────────────────
	if it.CoveredDays < it.RequestedDays {
		free := it.RequestedDays - it.CoveredDays
		pdf.SetFillColor(255, 248, 225)
		pdf.SetDrawColor(240, 200, 90)
		pdf.SetTextColor(130, 90, 20)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetLineWidth(0.4)
		y := pdf.GetY()
		pdf.Rect(20, y, 170, 10, "FD")
		pdf.SetXY(23, y+2)
		pdf.MultiCell(164, 6,
			fmt.Sprintf("Curated plans cover the first %d days. The remaining %d are yours to explore freely.", it.CoveredDays, free),
			"", "C", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Ln(4)
	}

	// ── Day Sections ──────────────────────────────────────────
	for _, day := range it.Days {
		pdf.SetFillColor(21, 71, 52)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, fmt.Sprintf("  Day %d", day.Day), "", 1, "L", true, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 10)
		for _, activity := range day.Activities {
			pdf.SetX(24)
			pdf.MultiCell(162, 6, "- "+activity, "", "L", false)
		}
		pdf.Ln(3)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Yatrat Trip Planner · Suggested activities only · Opening hours and entry fees may vary",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
