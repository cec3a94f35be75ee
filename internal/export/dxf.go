package export

import (
	"fmt"

	"github.com/piwi3910/BoardCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// Board spacing in the DXF drawing, in the same units as cut lengths.
const dxfRowGap = 2.0

// ExportDXF writes the physical cutting layout as a DXF drawing. Each board
// is a rectangle on the BOARDS layer, stacked top to bottom in plan order;
// each cut boundary is a vertical line on the CUTS layer. Board height in
// the drawing is the cross-section height of its board type.
func ExportDXF(path string, result model.OptimizeResult, boards []model.BoardOffering) error {
	if len(result.CutPlan) == 0 {
		return fmt.Errorf("no cut plan to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("BOARDS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add BOARDS layer: %w", err)
	}
	if _, err := d.AddLayer("CUTS", color.Red, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("failed to add CUTS layer: %w", err)
	}

	y := 0.0
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		rowHeight := b.Height
		for _, board := range result.CutPlan[idx] {
			if err := drawBoard(d, board, y, rowHeight); err != nil {
				return err
			}
			y -= rowHeight + dxfRowGap
		}
	}

	return d.SaveAs(path)
}

// drawBoard draws one physical board rectangle with its cut boundaries.
// y is the top edge; the board extends downward by rowHeight.
func drawBoard(d *drawing.Drawing, board model.PhysicalBoard, y, rowHeight float64) error {
	top, bottom := y, y-rowHeight

	if err := d.ChangeLayer("BOARDS"); err != nil {
		return err
	}
	edges := [][4]float64{
		{0, top, board.Length, top},
		{0, bottom, board.Length, bottom},
		{0, top, 0, bottom},
		{board.Length, top, board.Length, bottom},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("failed to draw board edge: %w", err)
		}
	}

	if err := d.ChangeLayer("CUTS"); err != nil {
		return err
	}
	x := 0.0
	for i, cut := range board.Cuts {
		x += cut
		// The final boundary is the board edge itself when there is no waste
		if i == len(board.Cuts)-1 && board.Waste() <= 0 {
			break
		}
		if _, err := d.Line(x, top, 0, x, bottom, 0); err != nil {
			return fmt.Errorf("failed to draw cut line: %w", err)
		}
	}
	return nil
}
