package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BoardCut/internal/project"
)

// newCatalogCommand groups the board catalog subcommands. The catalog holds
// the user's reusable board presets (the dimensional lumber their supplier
// stocks) in a JSON file; it is created with common sizes on first use.
func newCatalogCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the reusable board catalog",
		Long: `Catalog manages the board presets stored in the user's catalog file.
Presets can be listed, inspected, and merged from other catalog files, and
the optimize command can use them as its board offerings via --catalog.`,
	}
	cmd.PersistentFlags().StringVar(&catalogPath, "file", project.DefaultCatalogPath(), "catalog file (JSON)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the board presets in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := project.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			for _, b := range c.Boards {
				cmd.Printf("%-10s %gx%gx%g\"  $%.2f\n", b.Name, b.Width, b.Height, b.Length, b.Price)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show one board preset by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := project.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			preset := c.FindByName(args[0])
			if preset == nil {
				return fmt.Errorf("no preset named %q in %s", args[0], catalogPath)
			}
			cmd.Printf("Name:    %s\n", preset.Name)
			cmd.Printf("Size:    %gx%g\" cross-section, %g\" long\n", preset.Width, preset.Height, preset.Length)
			cmd.Printf("Price:   $%.2f\n", preset.Price)
			cmd.Printf("ID:      %s\n", preset.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Merge presets from another catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := project.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			merged, err := project.ImportCatalog(args[0], existing)
			if err != nil {
				return err
			}
			if err := project.SaveCatalog(catalogPath, merged); err != nil {
				return err
			}
			cmd.Printf("Imported %d new preset(s), catalog now has %d\n",
				len(merged.Boards)-len(existing.Boards), len(merged.Boards))
			return nil
		},
	})

	return cmd
}
