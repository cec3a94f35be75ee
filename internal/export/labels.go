package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BoardCut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each board label's QR code.
type LabelInfo struct {
	BoardIndex  int       `json:"board"`
	BoardNumber int       `json:"number"`
	Dimension   string    `json:"dimension"`
	Length      float64   `json:"length_in"`
	Cuts        []float64 `json:"cuts_in"`
	Waste       float64   `json:"waste_in"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per physical board in
// the cutting plan. Each label carries the board's size, its position in the
// plan, and a QR code encoding its cut list as JSON. Labels are laid out on
// a standard label sheet format (Avery 5160 / 3 columns x 10 rows).
func ExportLabels(path string, result model.OptimizeResult, boards []model.BoardOffering) error {
	labels := CollectLabelInfos(result, boards)
	if len(labels) == 0 {
		return fmt.Errorf("no boards to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for board %d #%d: %w", label.BoardIndex, label.BoardNumber, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%d", info.BoardIndex, info.BoardNumber)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	title := fmt.Sprintf("%s x %g\"  #%d", info.Dimension, info.Length, info.BoardNumber)
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	cuts := ""
	for i, c := range info.Cuts {
		if i > 0 {
			cuts += " + "
		}
		cuts += fmt.Sprintf("%g\"", c)
	}
	// Truncate the cut list if too long
	if pdf.GetStringWidth(cuts) > textW {
		for len(cuts) > 0 && pdf.GetStringWidth(cuts+"...") > textW {
			cuts = cuts[:len(cuts)-1]
		}
		cuts += "..."
	}
	pdf.CellFormat(textW, 3.5, cuts, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("waste %g\"", info.Waste), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from an optimization result
// for use in testing or alternative export formats.
func CollectLabelInfos(result model.OptimizeResult, boards []model.BoardOffering) []LabelInfo {
	var labels []LabelInfo
	for _, idx := range sortedIndices(result) {
		for i, board := range result.CutPlan[idx] {
			labels = append(labels, LabelInfo{
				BoardIndex:  idx,
				BoardNumber: i + 1,
				Dimension:   boards[idx].Dimension().String(),
				Length:      board.Length,
				Cuts:        board.Cuts,
				Waste:       board.Waste(),
			})
		}
	}
	return labels
}
