package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BoardCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the optimization result as an Excel workbook with three
// sheets: the shopping list, the board-by-board cut plan, and the waste
// summary.
func ExportXLSX(path string, result model.OptimizeResult, boards []model.BoardOffering) error {
	if len(result.BoardPlan) == 0 {
		return fmt.Errorf("no result to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const shopping = "Shopping List"
	f.SetSheetName("Sheet1", shopping)
	writeRow(f, shopping, 1, "Board", "Dimension", "Length (in)", "Price", "Quantity", "Subtotal")
	row := 2
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		qty := result.BoardPlan[idx]
		writeRow(f, shopping, row, b.Label, b.Dimension().String(), b.Length, b.Price, qty, float64(qty)*b.Price)
		row++
	}
	row++
	writeRow(f, shopping, row, "Total", "", "", "", result.BoardsUsed(), result.TotalCost)

	const cutPlan = "Cut Plan"
	if _, err := f.NewSheet(cutPlan); err != nil {
		return err
	}
	writeRow(f, cutPlan, 1, "Board type", "Board #", "Cuts (in)", "Used (in)", "Waste (in)")
	row = 2
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		for i, board := range result.CutPlan[idx] {
			cuts := make([]string, len(board.Cuts))
			for j, c := range board.Cuts {
				cuts[j] = fmt.Sprintf("%g", c)
			}
			writeRow(f, cutPlan, row, fmt.Sprintf("%sx%g", b.Dimension(), b.Length), i+1,
				strings.Join(cuts, " + "), board.Used(), board.Waste())
			row++
		}
	}

	const waste = "Waste Summary"
	if _, err := f.NewSheet(waste); err != nil {
		return err
	}
	writeRow(f, waste, 1, "Board type", "Boards", "Waste (in)")
	row = 2
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		writeRow(f, waste, row, fmt.Sprintf("%sx%g", b.Dimension(), b.Length), result.BoardPlan[idx], result.WasteSummary[idx])
		row++
	}
	row++
	writeRow(f, waste, row, "Total", result.BoardsUsed(), result.TotalWaste())

	return f.SaveAs(path)
}

// writeRow fills one worksheet row starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		// SetCellValue only fails on invalid coordinates, checked above
		_ = f.SetCellValue(sheet, cell, v)
	}
}
