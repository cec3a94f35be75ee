package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/BoardCut/internal/engine"
	"github.com/piwi3910/BoardCut/internal/export"
	"github.com/piwi3910/BoardCut/internal/model"
)

// newDemoCommand builds the demo subcommand: two built-in example projects
// that walk through the optimizer output without needing any input files.
func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run built-in example projects",
		Long:  "Demo optimizes two example lumber projects (a small shelf and a workbench frame) and prints their cutting plans.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := engine.New(model.DefaultSettings())

			for _, ex := range demoProjects() {
				cmd.Printf("\n### %s ###\n\n", ex.Name)
				result, err := opt.Optimize(ex.Cuts, ex.Boards)
				if err != nil {
					return err
				}
				cmd.Print(export.FormatResult(result, ex.Boards))
			}
			return nil
		},
	}
}

// demoProjects returns the built-in example projects. Lengths are inches.
func demoProjects() []model.Project {
	shelf := model.NewProject()
	shelf.Name = "Small Shelf Project"
	shelf.Cuts = []model.CutRequest{
		model.NewCutRequest("shelf", 2, 4, 24, 3),
		model.NewCutRequest("side", 2, 4, 36, 2),
		model.NewCutRequest("support", 2, 4, 20, 2),
	}
	shelf.Boards = []model.BoardOffering{
		model.NewBoardOffering("2x4x8'", 2, 4, 96, 8),
		model.NewBoardOffering("2x4x6'", 2, 4, 72, 6),
	}

	bench := model.NewProject()
	bench.Name = "Workbench Frame"
	bench.Cuts = []model.CutRequest{
		model.NewCutRequest("leg", 4, 4, 34, 4),
		model.NewCutRequest("long rail", 2, 4, 60, 4),
		model.NewCutRequest("short rail", 2, 4, 20, 4),
		model.NewCutRequest("top slat", 1, 4, 64, 6),
	}
	bench.Boards = []model.BoardOffering{
		model.NewBoardOffering("2x4x8'", 2, 4, 96, 8),
		model.NewBoardOffering("2x4x10'", 2, 4, 120, 11),
		model.NewBoardOffering("4x4x8'", 4, 4, 96, 20),
		model.NewBoardOffering("1x4x8'", 1, 4, 96, 6),
	}

	return []model.Project{shelf, bench}
}
