package export

import (
	"strings"
	"testing"

	"github.com/piwi3910/BoardCut/internal/model"
)

func TestFormatResult_Sections(t *testing.T) {
	out := FormatResult(buildTestResult(), buildTestBoards())

	for _, section := range []string{"SHOPPING LIST", "CUTTING INSTRUCTIONS", "WASTE SUMMARY"} {
		if !strings.Contains(out, section) {
			t.Errorf("output missing %q section", section)
		}
	}
}

func TestFormatResult_ShoppingList(t *testing.T) {
	out := FormatResult(buildTestResult(), buildTestBoards())

	if !strings.Contains(out, "Buy 2x 2x4x96\" @ $8.00 boards") {
		t.Errorf("missing 2x4 purchase line, got:\n%s", out)
	}
	if !strings.Contains(out, "Buy 1x 2x6x120\" @ $14.00 boards") {
		t.Errorf("missing 2x6 purchase line, got:\n%s", out)
	}
	if !strings.Contains(out, "Total Cost: $30.00") {
		t.Errorf("missing total cost line, got:\n%s", out)
	}
}

func TestFormatResult_CuttingInstructions(t *testing.T) {
	out := FormatResult(buildTestResult(), buildTestBoards())

	if !strings.Contains(out, `Board #1: 36" + 24" + 24" = 84" (waste: 12")`) {
		t.Errorf("missing cut line for first 2x4 board, got:\n%s", out)
	}
	if !strings.Contains(out, `Board #1: 48" + 48" = 96" (waste: 24")`) {
		t.Errorf("missing cut line for 2x6 board, got:\n%s", out)
	}
}

func TestFormatResult_WasteSummary(t *testing.T) {
	out := FormatResult(buildTestResult(), buildTestBoards())

	if !strings.Contains(out, `2x4x96": 24" total waste`) {
		t.Errorf("missing 2x4 waste line, got:\n%s", out)
	}
	if !strings.Contains(out, `Total waste: 48"`) {
		t.Errorf("missing total waste line, got:\n%s", out)
	}
}

func TestBoardName(t *testing.T) {
	b := model.BoardOffering{Width: 2, Height: 4, Length: 96, Price: 8.5}
	if got := boardName(b); got != `2x4x96" @ $8.50` {
		t.Errorf("boardName() = %q", got)
	}
}
