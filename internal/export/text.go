// Package export renders cut optimization results to the formats a shop can
// use: plain-text instructions, printable PDF plans, QR-coded board labels,
// DXF diagrams, and Excel workbooks.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piwi3910/BoardCut/internal/model"
)

// boardName formats a board offering as a human-readable size tag,
// e.g. `2x4x96" @ $8.00`.
func boardName(b model.BoardOffering) string {
	return fmt.Sprintf("%sx%g\" @ $%.2f", b.Dimension(), b.Length, b.Price)
}

// sortedIndices returns the board indices appearing in the plan, ascending.
func sortedIndices(result model.OptimizeResult) []int {
	indices := make([]int, 0, len(result.BoardPlan))
	for idx := range result.BoardPlan {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// FormatResult renders a human-readable shopping list, cutting instructions
// and waste summary for an optimization result.
func FormatResult(result model.OptimizeResult, boards []model.BoardOffering) string {
	var sb strings.Builder
	divider := strings.Repeat("=", 60)

	sb.WriteString(divider + "\n")
	sb.WriteString("SHOPPING LIST\n")
	sb.WriteString(divider + "\n")
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		fmt.Fprintf(&sb, "Buy %dx %s boards\n", result.BoardPlan[idx], boardName(b))
	}
	fmt.Fprintf(&sb, "\nTotal Cost: $%.2f\n", result.TotalCost)

	sb.WriteString("\n" + divider + "\n")
	sb.WriteString("CUTTING INSTRUCTIONS\n")
	sb.WriteString(divider + "\n")
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		fmt.Fprintf(&sb, "\n%sx%g\" Boards:\n", b.Dimension(), b.Length)
		for i, board := range result.CutPlan[idx] {
			cuts := make([]string, len(board.Cuts))
			for j, c := range board.Cuts {
				cuts[j] = fmt.Sprintf("%g\"", c)
			}
			fmt.Fprintf(&sb, "  Board #%d: %s = %g\" (waste: %g\")\n",
				i+1, strings.Join(cuts, " + "), board.Used(), board.Waste())
		}
	}

	sb.WriteString("\n" + divider + "\n")
	sb.WriteString("WASTE SUMMARY\n")
	sb.WriteString(divider + "\n")
	for _, idx := range sortedIndices(result) {
		b := boards[idx]
		fmt.Fprintf(&sb, "%sx%g\": %g\" total waste\n", b.Dimension(), b.Length, result.WasteSummary[idx])
	}
	fmt.Fprintf(&sb, "\nTotal waste: %g\"\n", result.TotalWaste())

	return sb.String()
}
