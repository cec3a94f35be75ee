package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Width,Height,Length,Qty\nShelf,2,4,24,3\nRail,2,4,36,2\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Width;Height;Length;Qty\nShelf;2;4;24;3\nRail;2;4;36;2\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tWidth\tHeight\tLength\tQty\nShelf\t2\t4\t24\t3\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Width|Height|Length|Qty\nShelf|2|4|24|3\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Label", "Width", "Height", "Length", "Quantity"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Length != 3 {
		t.Errorf("expected Length at 3, got %d", mapping.Length)
	}
	if mapping.Quantity != 4 {
		t.Errorf("expected Quantity at 4, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"NAME", "WIDTH", "HEIGHT", "LENGTH", "QTY"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Quantity != 4 {
		t.Errorf("expected Quantity at 4, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"Part Name", "W", "Thickness", "Len", "Pcs"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Length != 3 {
		t.Errorf("expected Length at 3, got %d", mapping.Length)
	}
	if mapping.Quantity != 4 {
		t.Errorf("expected Quantity at 4, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_PriceHeader(t *testing.T) {
	row := []string{"Board", "Width", "Height", "Length", "Cost"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Price != 4 {
		t.Errorf("expected Price at 4, got %d", mapping.Price)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Qty", "Length", "Height", "Width", "Label"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Quantity != 0 {
		t.Errorf("expected Quantity at 0, got %d", mapping.Quantity)
	}
	if mapping.Length != 1 {
		t.Errorf("expected Length at 1, got %d", mapping.Length)
	}
	if mapping.Label != 4 {
		t.Errorf("expected Label at 4, got %d", mapping.Label)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Shelf", "2", "4", "24", "3"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	// Should fall back to positional
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Length != 3 || mapping.Quantity != 4 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── Cut List Import Tests ─────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestImportCuts_WithHeaders(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\nShelf,2,4,24,3\nRail,2,4,36,2\n")
	result := ImportCuts(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d", len(result.Cuts))
	}

	if result.Cuts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Cuts[0].Label)
	}
	if result.Cuts[0].Width != 2 {
		t.Errorf("expected width 2, got %f", result.Cuts[0].Width)
	}
	if result.Cuts[0].Length != 24 {
		t.Errorf("expected length 24, got %f", result.Cuts[0].Length)
	}
	if result.Cuts[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", result.Cuts[0].Quantity)
	}
}

func TestImportCuts_WithoutHeaders(t *testing.T) {
	path := writeTempFile(t, "cuts.csv", "Shelf,2,4,24,3\nRail,2,4,36,2\n")
	result := ImportCuts(path)

	if len(result.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d (errors: %v)", len(result.Cuts), result.Errors)
	}
	if result.Cuts[1].Label != "Rail" {
		t.Errorf("expected label 'Rail', got '%s'", result.Cuts[1].Label)
	}
}

func TestImportCuts_SemicolonFile(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label;Width;Height;Length;Quantity\nShelf;2;4;24;3\n")
	result := ImportCuts(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cuts) != 1 {
		t.Fatalf("expected 1 cut, got %d", len(result.Cuts))
	}
	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Errorf("expected semicolon delimiter warning, got: %v", result.Warnings)
	}
}

func TestImportCuts_InvalidRowsSkipped(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\nGood,2,4,24,3\nBad,abc,4,24,3\nAlsoGood,2,4,36,1\n")
	result := ImportCuts(path)

	if len(result.Cuts) != 2 {
		t.Errorf("expected 2 valid cuts, got %d", len(result.Cuts))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestImportCuts_ZeroQuantity(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\nShelf,2,4,24,0\n")
	result := ImportCuts(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for zero quantity")
	}
}

func TestImportCuts_NegativeLength(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\nShelf,2,4,-24,3\n")
	result := ImportCuts(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for negative length")
	}
}

func TestImportCuts_EmptyRowsSkipped(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\nShelf,2,4,24,3\n\n\nRail,2,4,36,2\n")
	result := ImportCuts(path)

	if len(result.Cuts) != 2 {
		t.Errorf("expected 2 cuts (skipping empty rows), got %d (errors: %v)", len(result.Cuts), result.Errors)
	}
}

func TestImportCuts_EmptyLabel(t *testing.T) {
	path := writeTempFile(t, "cuts.csv",
		"Label,Width,Height,Length,Quantity\n,2,4,24,3\n")
	result := ImportCuts(path)

	if len(result.Cuts) != 1 {
		t.Fatalf("expected 1 cut, got %d (errors: %v)", len(result.Cuts), result.Errors)
	}
	if result.Cuts[0].Label != "Cut 1" {
		t.Errorf("expected auto-generated label 'Cut 1', got '%s'", result.Cuts[0].Label)
	}
}

func TestImportCuts_MissingRequiredColumnInHeader(t *testing.T) {
	path := writeTempFile(t, "cuts.csv", "Label,Width,Quantity\nShelf,2,3\n")
	result := ImportCuts(path)

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Height and Length columns")
	}
	foundMissing := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Required columns not found") {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Errorf("expected 'Required columns not found' error, got: %v", result.Errors)
	}
}

func TestImportCuts_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "cuts.csv", "")
	result := ImportCuts(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCuts_MissingFile(t *testing.T) {
	result := ImportCuts(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// ─── Board Catalog Import Tests ────────────────────────────

func TestImportBoards_WithHeaders(t *testing.T) {
	path := writeTempFile(t, "boards.csv",
		"Label,Width,Height,Length,Price\n2x4x8',2,4,96,8.50\n2x4x10',2,4,120,11\n")
	result := ImportBoards(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Boards) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(result.Boards))
	}
	if result.Boards[0].Length != 96 {
		t.Errorf("expected length 96, got %f", result.Boards[0].Length)
	}
	if result.Boards[0].Price != 8.50 {
		t.Errorf("expected price 8.50, got %f", result.Boards[0].Price)
	}
}

func TestImportBoards_DollarSignPrice(t *testing.T) {
	path := writeTempFile(t, "boards.csv",
		"Label,Width,Height,Length,Price\n2x4x8',2,4,96,$8.50\n")
	result := ImportBoards(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(result.Boards))
	}
	if result.Boards[0].Price != 8.50 {
		t.Errorf("expected price 8.50, got %f", result.Boards[0].Price)
	}
}

func TestImportBoards_FreeBoardAllowed(t *testing.T) {
	path := writeTempFile(t, "boards.csv",
		"Label,Width,Height,Length,Price\nScrap,2,4,48,0\n")
	result := ImportBoards(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(result.Boards))
	}
}

func TestImportBoards_NegativePrice(t *testing.T) {
	path := writeTempFile(t, "boards.csv",
		"Label,Width,Height,Length,Price\nBad,2,4,96,-3\n")
	result := ImportBoards(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for negative price")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func writeTestXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test xlsx: %v", err)
	}
	return path
}

func TestImportCuts_Excel(t *testing.T) {
	path := writeTestXLSX(t, [][]interface{}{
		{"Label", "Width", "Height", "Length", "Quantity"},
		{"Shelf", 2, 4, 24, 3},
		{"Rail", 2, 4, 36, 2},
	})
	result := ImportCuts(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d", len(result.Cuts))
	}
	if result.Cuts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Cuts[0].Label)
	}
	if result.Cuts[0].Length != 24 {
		t.Errorf("expected length 24, got %f", result.Cuts[0].Length)
	}
}

func TestImportBoards_Excel(t *testing.T) {
	path := writeTestXLSX(t, [][]interface{}{
		{"Label", "Width", "Height", "Length", "Price"},
		{"2x4x8'", 2, 4, 96, 8},
	})
	result := ImportBoards(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(result.Boards))
	}
	if result.Boards[0].Price != 8 {
		t.Errorf("expected price 8, got %f", result.Boards[0].Price)
	}
}
