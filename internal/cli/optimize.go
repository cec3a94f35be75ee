package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BoardCut/internal/engine"
	"github.com/piwi3910/BoardCut/internal/export"
	"github.com/piwi3910/BoardCut/internal/importer"
	"github.com/piwi3910/BoardCut/internal/model"
	"github.com/piwi3910/BoardCut/internal/project"
)

// newOptimizeCommand builds the optimize subcommand. Inputs come either
// from a project file or from separate cut list and board catalog files;
// results can be printed, exported, and saved back to the project.
func newOptimizeCommand() *cobra.Command {
	var (
		projectPath string
		cutsPath    string
		boardsPath  string
		catalogPath string
		pdfPath     string
		xlsxPath    string
		dxfPath     string
		labelsPath  string
		jsonOutput  bool
		saveResult  bool
		timeout     time.Duration
		maxPatterns int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Compute the cheapest board purchase and cutting plan",
		Long: `Optimize reads a cut list and a board catalog, computes the minimum-cost
purchase plan, and prints the shopping list, cutting instructions and waste
summary. Inputs are a BoardCut project file (--project) or separate cut and
board files (--cuts/--boards, CSV or XLSX).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				proj model.Project
				err  error
			)

			switch {
			case projectPath != "":
				proj, err = project.Load(projectPath)
				if err != nil {
					return err
				}
			case cutsPath != "" && boardsPath != "":
				proj = model.NewProject()
				if proj.Cuts, err = importCuts(cmd, cutsPath); err != nil {
					return err
				}
				if proj.Boards, err = importBoards(cmd, boardsPath); err != nil {
					return err
				}
			case cutsPath != "" && catalogPath != "":
				proj = model.NewProject()
				if proj.Cuts, err = importCuts(cmd, cutsPath); err != nil {
					return err
				}
				if proj.Boards, err = catalogBoards(catalogPath); err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --project, or --cuts with --boards or --catalog, is required")
			}

			if timeout > 0 {
				proj.Settings.SolveTimeout = timeout
			}
			if maxPatterns > 0 {
				proj.Settings.MaxPatternsPerBoardType = maxPatterns
			}

			opt := engine.New(proj.Settings)
			result, err := opt.Optimize(proj.Cuts, proj.Boards)
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			} else {
				cmd.Print(export.FormatResult(result, proj.Boards))
			}

			if pdfPath != "" {
				if err := export.ExportPDF(pdfPath, result, proj.Boards); err != nil {
					return fmt.Errorf("PDF export failed: %w", err)
				}
				cmd.Printf("Wrote cutting plan to %s\n", pdfPath)
			}
			if xlsxPath != "" {
				if err := export.ExportXLSX(xlsxPath, result, proj.Boards); err != nil {
					return fmt.Errorf("XLSX export failed: %w", err)
				}
				cmd.Printf("Wrote workbook to %s\n", xlsxPath)
			}
			if dxfPath != "" {
				if err := export.ExportDXF(dxfPath, result, proj.Boards); err != nil {
					return fmt.Errorf("DXF export failed: %w", err)
				}
				cmd.Printf("Wrote layout to %s\n", dxfPath)
			}
			if labelsPath != "" {
				if err := export.ExportLabels(labelsPath, result, proj.Boards); err != nil {
					return fmt.Errorf("label export failed: %w", err)
				}
				cmd.Printf("Wrote labels to %s\n", labelsPath)
			}

			if saveResult && projectPath != "" {
				proj.Result = &result
				if err := project.Save(projectPath, proj); err != nil {
					return fmt.Errorf("failed to save project: %w", err)
				}
				cmd.Printf("Saved result to %s\n", projectPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "BoardCut project file (JSON)")
	cmd.Flags().StringVar(&cutsPath, "cuts", "", "cut list file (CSV or XLSX)")
	cmd.Flags().StringVar(&boardsPath, "boards", "", "board catalog file (CSV or XLSX)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "use the presets of a board catalog file (JSON) as the offerings")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a printable cutting plan PDF")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel workbook")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF layout drawing")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "write QR-coded board labels (PDF)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw result as JSON")
	cmd.Flags().BoolVar(&saveResult, "save", false, "save the result back into the project file")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "solver time limit per cross-section (overrides project settings)")
	cmd.Flags().IntVar(&maxPatterns, "max-patterns", 0, "pattern cap per board type (overrides project settings)")

	return cmd
}

// importCuts loads a cut list file, surfacing importer warnings on stderr.
func importCuts(cmd *cobra.Command, path string) ([]model.CutRequest, error) {
	res := importer.ImportCuts(path)
	for _, w := range res.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("cut list %s: %s", path, res.Errors[0])
	}
	return res.Cuts, nil
}

// catalogBoards turns the presets of a catalog file into board offerings.
func catalogBoards(path string) ([]model.BoardOffering, error) {
	c, err := project.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	boards := make([]model.BoardOffering, 0, len(c.Boards))
	for _, preset := range c.Boards {
		boards = append(boards, preset.ToOffering())
	}
	return boards, nil
}

// importBoards loads a board catalog file, surfacing importer warnings on stderr.
func importBoards(cmd *cobra.Command, path string) ([]model.BoardOffering, error) {
	res := importer.ImportBoards(path)
	for _, w := range res.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("board catalog %s: %s", path, res.Errors[0])
	}
	return res.Boards, nil
}
