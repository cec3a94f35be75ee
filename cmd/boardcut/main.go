// BoardCut — Lumber Cut List Optimizer
//
// A command-line tool that computes the cheapest combination of boards to
// purchase for a lumber cut list, with a board-by-board cutting plan and
// waste report. Optimization is exact per cross-section: enumerated cutting
// patterns feed an integer program solved by HiGHS.
//
// Build:
//
//	go build -o boardcut ./cmd/boardcut
package main

import (
	"github.com/piwi3910/BoardCut/internal/cli"
)

// version is set by the release pipeline via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
