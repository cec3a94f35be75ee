package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BoardCut/internal/model"
)

// cutColor represents an RGB color for a cut segment.
type cutColor struct {
	R, G, B int
}

// cutColors rotates per distinct cut length so equal lengths share a color
// across the whole document.
var cutColors = []cutColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	barHeight    = 10.0
	barSpacing   = 16.0
	barsPerPage  = 10
)

// ExportPDF generates a PDF document containing the cutting plan. Each board
// type gets its own page(s) with one bar diagram per physical board, followed
// by a summary page with the shopping list and waste totals.
func ExportPDF(path string, result model.OptimizeResult, boards []model.BoardOffering) error {
	if len(result.CutPlan) == 0 {
		return fmt.Errorf("no cut plan to export")
	}

	colors := assignColors(result)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, idx := range sortedIndices(result) {
		renderBoardTypePages(pdf, boards[idx], idx, result, colors)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, boards)

	return pdf.OutputFileAndClose(path)
}

// assignColors maps every distinct cut length in the plan to a color,
// longest lengths first so color assignment is deterministic.
func assignColors(result model.OptimizeResult) map[float64]cutColor {
	var lengths []float64
	seen := make(map[float64]bool)
	for _, plan := range result.CutPlan {
		for _, board := range plan {
			for _, c := range board.Cuts {
				if !seen[c] {
					seen[c] = true
					lengths = append(lengths, c)
				}
			}
		}
	}
	// Insertion order varies with map iteration, so sort before assigning.
	sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))
	colors := make(map[float64]cutColor, len(lengths))
	for i, l := range lengths {
		colors[l] = cutColors[i%len(cutColors)]
	}
	return colors
}

// renderBoardTypePages draws all physical boards of one board type, paging
// as needed.
func renderBoardTypePages(pdf *fpdf.Fpdf, board model.BoardOffering, idx int, result model.OptimizeResult, colors map[float64]cutColor) {
	plan := result.CutPlan[idx]
	pages := int(math.Ceil(float64(len(plan)) / float64(barsPerPage)))
	if pages == 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / board.Length

	for page := 0; page < pages; page++ {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(marginLeft, marginTop)
		title := fmt.Sprintf("Board type %d: %s  (buy %d)", idx+1, boardName(board), result.BoardPlan[idx])
		pdf.CellFormat(drawWidth, headerHeight, title, "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft, marginTop+headerHeight)
		stats := fmt.Sprintf("Boards: %d | Waste: %g\" | Page %d/%d", len(plan), result.WasteSummary[idx], page+1, pages)
		pdf.CellFormat(drawWidth, 5, stats, "", 0, "L", false, 0, "")

		start := page * barsPerPage
		end := start + barsPerPage
		if end > len(plan) {
			end = len(plan)
		}
		for row, physical := range plan[start:end] {
			y := drawAreaTop + float64(row)*barSpacing
			renderBoardBar(pdf, physical, start+row+1, y, scale, colors)
		}
	}
}

// renderBoardBar draws one physical board as a horizontal bar with its cut
// segments; the leftover tail is hatched light gray as waste.
func renderBoardBar(pdf *fpdf.Fpdf, board model.PhysicalBoard, number int, y, scale float64, colors map[float64]cutColor) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y-4)
	pdf.CellFormat(60, 3.5, fmt.Sprintf("Board #%d  (waste %g\")", number, board.Waste()), "", 0, "L", false, 0, "")

	// Board outline
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.3)
	pdf.Rect(marginLeft, y, board.Length*scale, barHeight, "D")

	x := marginLeft
	for _, cut := range board.Cuts {
		w := cut * scale
		col := colors[cut]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, y, w, barHeight, "FD")

		// Length label, centered when it fits
		label := fmt.Sprintf("%g\"", cut)
		if pdf.GetStringWidth(label) < w-1 {
			pdf.SetXY(x, y+barHeight/2-1.5)
			pdf.CellFormat(w, 3, label, "", 0, "C", false, 0, "")
		}
		x += w
	}

	if waste := board.Waste(); waste > 0 {
		pdf.SetFillColor(230, 230, 230)
		pdf.Rect(x, y, waste*scale, barHeight, "F")
	}
}

// renderSummaryPage draws the shopping list and waste totals.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.OptimizeResult, boards []model.BoardOffering) {
	drawWidth := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(drawWidth, headerHeight, "Shopping List", "", 0, "L", false, 0, "")

	y := drawAreaTop
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(90, 6, "Board", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Quantity", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Each", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Subtotal", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "Waste", "B", 0, "R", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		qty := result.BoardPlan[idx]
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(90, 6, fmt.Sprintf("%sx%g\"", b.Dimension(), b.Length), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("$%.2f", b.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("$%.2f", float64(qty)*b.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%g\"", result.WasteSummary[idx]), "", 0, "R", false, 0, "")
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(drawWidth, 6, fmt.Sprintf("Total: $%.2f  |  %d boards  |  %g\" waste",
		result.TotalCost, result.BoardsUsed(), result.TotalWaste()), "", 0, "L", false, 0, "")
}
